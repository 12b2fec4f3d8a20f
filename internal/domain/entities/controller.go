package entities

import (
	"github.com/spf13/cobra"
)

// ControllerBind carries the Cobra command metadata a controller exposes.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is a CLI entry point. Execute returns an error so the process
// can exit non-zero on any unhandled failure.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}
