package meshdeps

import (
	"embed"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/meshdeps/pkg/cobrax/topics"
)

//go:embed topics/*.md
var topicFiles embed.FS

func topicsFS() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return nil
	}
	return sub
}

func newTopicsCmd(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: groupMisc,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tm.WriteTopicList(cmd.OutOrStdout(), cmd.Root().Name())
		},
	}
}
