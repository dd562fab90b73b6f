package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nerdneilsfield/validator-format-agent/pkg/format"
	"github.com/spf13/cobra"
)

// newListFormatsCommand 创建 list-formats 子命令
func newListFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-formats",
		Short: "列出支持的校验器格式",
		Run: func(cmd *cobra.Command, args []string) {
			t := table.NewWriter()
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"格式", "约定"})
			for _, f := range format.All() {
				t.AppendRow(table.Row{f, f.Description()})
			}
			fmt.Println(t.Render())
		},
	}
}
