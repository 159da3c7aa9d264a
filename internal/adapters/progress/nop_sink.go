package progress

import (
	"context"

	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/usecase"
)

// NopSink discards progress. Used when stderr is not a terminal or debug
// logs are enabled.
type NopSink struct{}

// NewNopSink creates a new no-op progress sink
func NewNopSink() *NopSink {
	return &NopSink{}
}

func (n *NopSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {}

func (n *NopSink) Info(message string) {}

func (n *NopSink) Error(message string) {}

var _ usecase.ProgressSink = (*NopSink)(nil)
