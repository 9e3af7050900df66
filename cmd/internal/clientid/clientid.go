package clientid

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lainsato/valuecell/cmd/internal/cmderr"
	"github.com/lainsato/valuecell/telemetry"
)

var Cmd = &cobra.Command{
	Use:   "client-id",
	Short: "Print the persistent client identifier for this installation.",
	Long: `Prints the stable identifier that names this installation, creating and
persisting it on first run. The first creation reports an anonymous init event
to the ValueCell backend; set VALUECELL_DISABLE_ANALYTICS=true to opt out.`,
	SuggestFor:   []string{"clientid", "id"},
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := telemetry.GetOrCreateClientID()
		if err != nil {
			return cmderr.AgentErr{Err: err}
		}
		fmt.Println(id)

		// Give a just-fired first-run beacon a chance to leave before the
		// process exits.
		telemetry.Shutdown()
		return nil
	},
}
