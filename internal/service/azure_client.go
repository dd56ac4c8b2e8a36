package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/ai/azopenai"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
)

// AzureOpenAIClient is the Azure OpenAI backed generator
type AzureOpenAIClient struct {
	client       *azopenai.Client
	deploymentID string
}

// NewAzureOpenAIClient creates a generator against an Azure OpenAI deployment
func NewAzureOpenAIClient(endpoint, apiKey, deploymentID string) (*AzureOpenAIClient, error) {
	keyCredential := azcore.NewKeyCredential(apiKey)
	client, err := azopenai.NewClientWithKeyCredential(endpoint, keyCredential, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating Azure OpenAI client: %v", err)
	}
	return &AzureOpenAIClient{
		client:       client,
		deploymentID: deploymentID,
	}, nil
}

// Generate sends a system+user chat completion and returns the reply text
func (c *AzureOpenAIClient) Generate(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.GetChatCompletions(
		ctx,
		azopenai.ChatCompletionsOptions{
			DeploymentName: to.Ptr(c.deploymentID),
			Messages: []azopenai.ChatRequestMessageClassification{
				&azopenai.ChatRequestSystemMessage{
					Content: azopenai.NewChatRequestSystemMessageContent(system),
				},
				&azopenai.ChatRequestUserMessage{
					Content: azopenai.NewChatRequestUserMessageContent(user),
				},
			},
		},
		nil,
	)
	if err != nil {
		return "", &GenerateError{Kind: azureFailureKind(err), Err: err}
	}

	if len(resp.Choices) > 0 && resp.Choices[0].Message != nil && resp.Choices[0].Message.Content != nil {
		return strings.TrimSpace(*resp.Choices[0].Message.Content), nil
	}

	return "", &GenerateError{Kind: FailureDecode, Err: fmt.Errorf("no completion received")}
}

func azureFailureKind(err error) FailureKind {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		if respErr.StatusCode == http.StatusUnauthorized || respErr.StatusCode == http.StatusForbidden {
			return FailureAuth
		}
	}
	return FailureTransport
}
