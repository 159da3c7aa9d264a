package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/config"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// RenderNetworksList renders the configured networks as a table, marking the
// one a deployment would use
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured. Add [networks] to deploy.toml or set RPC_URL.")
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 4, Align: text.AlignRight},
	})
	t.AppendHeader(table.Row{"", "Network", "RPC URL", "Chain ID"})

	for _, network := range result.Networks {
		marker := ""
		if network.Name == result.Selected {
			marker = "*"
		}

		if network.Error != nil {
			t.AppendRow(table.Row{marker, network.Name, color.New(color.FgRed).Sprint(network.Error.Error()), ""})
			continue
		}

		chainID := "auto"
		if network.ChainID != 0 {
			chainID = fmt.Sprintf("%d", network.ChainID)
		}
		t.AppendRow(table.Row{
			marker,
			color.New(color.FgCyan, color.Bold).Sprint(network.Name),
			config.MaskRPCURL(network.RPCURL),
			chainID,
		})
	}

	_, err := fmt.Fprintln(r.out, t.Render())
	return err
}
