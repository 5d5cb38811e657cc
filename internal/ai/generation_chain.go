package ai

import (
	"context"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"codeweaver/internal/prompt"
)

// GenerationChain binds one ChatModel to one prompt template.
// Workflow: description (+ optional file text) -> composed messages ->
// streaming model call.
type GenerationChain struct {
	chatModel model.BaseChatModel
	tmpl      prompt.Template
}

// NewGenerationChain creates a generation chain.
//
// Args:
//   - chatModel: a ChatModel created via ai/component.NewChatModel
//   - tmpl: the endpoint's fixed prompt binding
func NewGenerationChain(chatModel model.BaseChatModel, tmpl prompt.Template) *GenerationChain {
	return &GenerationChain{
		chatModel: chatModel,
		tmpl:      tmpl,
	}
}

// Stream opens a streaming completion call for one request. The returned
// reader is single-pass and must be closed by the consumer.
func (c *GenerationChain) Stream(ctx context.Context, description, fileText string) (*schema.StreamReader[*schema.Message], error) {
	messages := []*schema.Message{
		schema.SystemMessage(c.tmpl.System),
		schema.UserMessage(c.tmpl.Compose(description, fileText)),
	}

	return c.chatModel.Stream(ctx, messages)
}
