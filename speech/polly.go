package speech

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"

	"quickblog/config"
)

// Synthesizer turns plain text into an audio asset and returns its URL.
// Synthesis runs asynchronously provider-side: the returned URL names where
// the audio will land once the task completes, not a finished asset.
type Synthesizer interface {
	Synthesize(ctx context.Context, plainText, postID string) (string, error)
}

// PollySynthesizer starts Amazon Polly speech synthesis tasks writing into
// a dedicated podcast bucket.
type PollySynthesizer struct {
	client *polly.Client
	cfg    config.SpeechConfig
}

func NewPollySynthesizer(awsCfg aws.Config, cfg config.SpeechConfig) *PollySynthesizer {
	return &PollySynthesizer{client: polly.NewFromConfig(awsCfg), cfg: cfg}
}

func (s *PollySynthesizer) Synthesize(ctx context.Context, plainText, postID string) (string, error) {
	out, err := s.client.StartSpeechSynthesisTask(ctx, &polly.StartSpeechSynthesisTaskInput{
		OutputFormat:       types.OutputFormat(s.cfg.OutputFormat),
		Text:               aws.String(plainText),
		VoiceId:            types.VoiceId(s.cfg.VoiceID),
		Engine:             types.Engine(s.cfg.Engine),
		LanguageCode:       types.LanguageCode(s.cfg.LanguageCode),
		OutputS3BucketName: aws.String(s.cfg.Bucket),
		OutputS3KeyPrefix:  aws.String(fmt.Sprintf("blog-%s/audio", postID)),
	})
	if err != nil {
		return "", fmt.Errorf("polly start synthesis task: %w", err)
	}
	if out.SynthesisTask == nil || out.SynthesisTask.OutputUri == nil {
		return "", errors.New("polly returned no synthesis task output uri")
	}
	return *out.SynthesisTask.OutputUri, nil
}
