package metrics

import (
	"context"
	"fmt"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/serverless-shop/order-pipeline/internal/aws"
)

// Recorder publishes per-batch processing counters to CloudWatch. Best
// effort: callers log a failed publish and move on.
type Recorder struct {
	cw        aws.CloudWatchAPI
	namespace string
}

func NewRecorder(client aws.CloudWatchAPI, namespace string) *Recorder {
	return &Recorder{
		cw:        client,
		namespace: namespace,
	}
}

// RecordBatch publishes the processed and failed counts of one batch.
func (r *Recorder) RecordBatch(ctx context.Context, processed, failed int) error {
	now := time.Now().UTC()
	_, err := r.cw.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: &r.namespace,
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: sdkaws.String("OrdersProcessed"),
				Timestamp:  &now,
				Unit:       cwtypes.StandardUnitCount,
				Value:      sdkaws.Float64(float64(processed)),
			},
			{
				MetricName: sdkaws.String("OrdersFailed"),
				Timestamp:  &now,
				Unit:       cwtypes.StandardUnitCount,
				Value:      sdkaws.Float64(float64(failed)),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}
