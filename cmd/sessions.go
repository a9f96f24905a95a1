package cmd

import (
	"fmt"

	"github.com/mkofman/pitchmatch/db"
	"github.com/mkofman/pitchmatch/model"
	"github.com/mkofman/pitchmatch/session"
	"github.com/mkofman/pitchmatch/util"
	"github.com/spf13/cobra"
)

var sessionsWithMetadata bool

func init() {
	sessionsCmd.Flags().BoolVar(&sessionsWithMetadata, "metadata", false, "fetch session metadata from DynamoDB")
	rootCmd.AddCommand(sessionsCmd)
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Lists recorded sessions",
	Long:  `Lists recorded sessions`,
	Run: func(cmd *cobra.Command, args []string) {
		listSessions()
	},
}

func listSessions() {
	sessions := session.LoadAll()
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet")
		return
	}

	metadatas := make(map[string]model.SessionMetadata)
	if sessionsWithMetadata {
		var ids []string
		for _, s := range sessions {
			ids = append(ids, s.Id)
		}
		// DynamoDB batch gets take at most 10 keys
		for start := 0; start < len(ids); start += 10 {
			end := util.Min(start+10, len(ids))
			for k, v := range db.GetSessionMetadatas(ids[start:end]) {
				metadatas[k] = v
			}
		}
	}

	for _, s := range sessions {
		fmt.Printf("%v  %v  %v matches", s.Id, s.StartedAt.Format("2006-01-02 15:04"), len(s.Matches))
		if md, ok := metadatas[s.Id]; ok {
			fmt.Printf("  [%v, in %v]", md.Instrument, md.Transposition)
		}
		fmt.Println()
	}
}
