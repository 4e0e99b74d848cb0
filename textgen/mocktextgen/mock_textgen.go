package mocktextgen

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	args := c.Called(ctx, prompt, temperature)
	return args.String(0), args.Error(1)
}
