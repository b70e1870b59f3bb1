package services

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// ModerationService screens review photos. A photo with any moderation label
// above the confidence floor marks the whole review as flagged for staff.
type ModerationService struct {
	client *rekognition.Client
}

func NewModerationService() (*ModerationService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &ModerationService{client: rekognition.NewFromConfig(cfg)}, nil
}

// ShouldFlag reports whether the image carries moderation labels at >= 80%
// confidence.
func (m *ModerationService) ShouldFlag(imageBytes []byte) (bool, error) {
	out, err := m.client.DetectModerationLabels(context.TODO(), &rekognition.DetectModerationLabelsInput{
		Image:         &types.Image{Bytes: imageBytes},
		MinConfidence: aws.Float32(80),
	})
	if err != nil {
		return false, err
	}
	return len(out.ModerationLabels) > 0, nil
}
