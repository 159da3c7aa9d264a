package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/usecase"
)

// ContractsRenderer renders contract lists
type ContractsRenderer struct {
	out io.Writer
}

// NewContractsRenderer creates a new contracts renderer
func NewContractsRenderer(out io.Writer) *ContractsRenderer {
	return &ContractsRenderer{out: out}
}

// RenderContractsList renders the indexed contracts, marking the configured one
func (r *ContractsRenderer) RenderContractsList(result *usecase.ListContractsResult) error {
	if len(result.Contracts) == 0 {
		fmt.Fprintln(r.out, "No contracts found. Compile the project first (npx hardhat compile or forge build).")
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
	})
	t.AppendHeader(table.Row{"", "Contract", "Source", "Artifact"})

	for _, c := range result.Contracts {
		marker := ""
		if c.Name == result.Selected {
			marker = "*"
		}
		t.AppendRow(table.Row{
			marker,
			color.New(color.FgCyan, color.Bold).Sprint(c.Name),
			c.SourceName,
			color.New(color.Faint).Sprint(c.ArtifactPath),
		})
	}

	_, err := fmt.Fprintln(r.out, t.Render())
	return err
}
