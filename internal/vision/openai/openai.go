// Package openai adapts the OpenAI Responses API to vision.Analyzer. Images
// travel inline as base64 JPEG data URLs.
package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

type Analyzer struct {
	client openai.Client
	model  string
}

// NewAnalyzer creates an Analyzer for the given key and model. Extra request
// options (base URL overrides for tests, custom HTTP clients) are passed
// through to the SDK.
func NewAnalyzer(apiKey, model string, opts ...option.RequestOption) *Analyzer {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Analyzer{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, instruction string, images [][]byte) (string, error) {
	if len(images) == 0 {
		return "", errors.New("no images provided")
	}

	content := responses.ResponseInputMessageContentListParam{
		responses.ResponseInputContentParamOfInputText(instruction),
	}
	for _, img := range images {
		dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(img)
		content = append(content, responses.ResponseInputContentUnionParam{
			OfInputImage: &responses.ResponseInputImageParam{
				ImageURL: openai.String(dataURL),
				Detail:   responses.ResponseInputImageDetailAuto,
			},
		})
	}

	resp, err := a.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: shared.ResponsesModel(a.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(content, responses.EasyInputMessageRoleUser),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai responses call: %w", err)
	}

	text := resp.OutputText()
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}
