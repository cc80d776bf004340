// Package cmd is a command-line client for talking to an LLRP reader:
// connect using a profile, fetch capabilities, run a configured inventory,
// and inspect the audit trail of a past session.
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/esitarski/llrp-go/codec"
	"github.com/esitarski/llrp-go/config"
	"github.com/esitarski/llrp-go/session"
	"github.com/esitarski/llrp-go/spec"
	"github.com/spf13/cobra"
)

const banner = `
 _    _      ____  ____     ____ _____ _
| |  | |    |  _ \|  _ \   / ___|_   _| |
| |  | |    | |_) | |_) | | |      | | | |
| |__| |___ |  _ <|  __/  | |___   | | | |___
|____|______|_| \_\_|      \____|  |_| |_____|

LLRP Reader Control
`

var CmdLLRPCtl = &cobra.Command{
	Use:  "llrpctl",
	Short: "LLRP reader control client",
	Long:  banner[1:],
}

func init() {
	cobra.EnableCommandSorting = false
	CmdLLRPCtl.AddCommand(cmdCapabilities())
	CmdLLRPCtl.AddCommand(cmdRun())
	CmdLLRPCtl.AddCommand(cmdAudit())
}

func loadConfigOrExit(path string) *config.Config {
	c, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "llrpctl: %v\n", err)
		os.Exit(3)
	}
	return c
}

func connectOrExit(reg *spec.Registry, c *config.Config) *session.Session {
	s := session.New(reg)
	if c.AuditLogPath != "" {
		a, err := session.OpenAuditLog(c.AuditLogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "llrpctl: failed to open audit log: %v\n", err)
			os.Exit(1)
		}
		s.WithAuditLog(a)
	}
	if err := s.Connect(c.Address, c.ConnectTimeout()); err != nil {
		fmt.Fprintf(os.Stderr, "llrpctl: failed to connect to %s: %v\n", c.Address, err)
		os.Exit(1)
	}
	return s
}

func cmdCapabilities() *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities CONFIG-FILE",
		Short: "Query GET_READER_CAPABILITIES and print the reply",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c := loadConfigOrExit(args[0])
			reg := spec.MustLoad(spec.Default())
			s := connectOrExit(reg, c)
			defer s.Close()

			req := &codec.Message{
				Name:   "GET_READER_CAPABILITIES",
				Fields: map[string]codec.Value{"RequestedData": codec.UintValue(0)},
			}
			resp, err := s.Transact(req, c.TransactTimeout())
			if err != nil {
				fmt.Fprintf(os.Stderr, "llrpctl: capabilities request failed: %v\n", err)
				os.Exit(1)
			}
			printMessage(resp)
		},
	}
}

func cmdRun() *cobra.Command {
	return &cobra.Command{
		Use:   "run CONFIG-FILE",
		Short: "Connect, install the configured ROSpecs, and print tag reports until interrupted",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c := loadConfigOrExit(args[0])
			reg := spec.MustLoad(spec.Default())
			s := connectOrExit(reg, c)
			defer s.Close()

			s.OnMessageType("RO_ACCESS_REPORT", func(msg *codec.Message) {
				printMessage(msg)
			})

			for _, ro := range c.ROSpecs {
				if err := installROSpec(s, c, ro); err != nil {
					fmt.Fprintf(os.Stderr, "llrpctl: failed to install ROSpec %d: %v\n", ro.ROSpecID, err)
					os.Exit(1)
				}
			}

			sigchan := make(chan os.Signal, 1)
			signal.Notify(sigchan, os.Interrupt, syscall.SIGTERM)
			<-sigchan
		},
	}
}

func installROSpec(s *session.Session, c *config.Config, ro config.ROSpecProfile) error {
	add := &codec.Message{
		Name: "ADD_ROSPEC",
		Params: []*codec.Parameter{
			roSpecParameter(ro),
		},
	}
	if _, err := s.Transact(add, c.TransactTimeout()); err != nil {
		return err
	}

	enable := &codec.Message{
		Name:   "ENABLE_ROSPEC",
		Fields: map[string]codec.Value{"ROSpecID": codec.UintValue(uint64(ro.ROSpecID))},
	}
	_, err := s.Transact(enable, c.TransactTimeout())
	return err
}

func roSpecParameter(ro config.ROSpecProfile) *codec.Parameter {
	antennas := make([]uint16, len(ro.AntennaIDs))
	copy(antennas, ro.AntennaIDs)
	if len(antennas) == 0 {
		antennas = []uint16{0} // all antennas
	}

	aiSpec := &codec.Parameter{
		Name: "AISpec",
		Fields: map[string]codec.Value{
			"AntennaIDs": antennaArrayValue(antennas),
		},
		Params: []*codec.Parameter{
			{
				Name:   "AISpecStopTrigger",
				Fields: map[string]codec.Value{"TriggerType": codec.UintValue(1), "DurationTrigger": codec.UintValue(ro.DurationSec * 1000)},
			},
			{Name: "InventoryParameterSpec", Fields: map[string]codec.Value{"InventoryParameterSpecID": codec.UintValue(1), "ProtocolID": codec.UintValue(1)}},
		},
	}

	reportSpec := &codec.Parameter{
		Name:   "ROReportSpec",
		Fields: map[string]codec.Value{"ROReportTrigger": codec.UintValue(1), "N": codec.UintValue(uint64(ro.ReportEveryNTags))},
		Params: []*codec.Parameter{
			{Name: "TagReportContentSelector", Fields: map[string]codec.Value{
				"EnableROSpecID":                 codec.BoolValue(false),
				"EnableSpecIndex":                codec.BoolValue(false),
				"EnableInventoryParameterSpecID": codec.BoolValue(false),
				"EnableAntennaID":                codec.BoolValue(true),
				"EnableChannelIndex":             codec.BoolValue(false),
				"EnablePeakRSSI":                 codec.BoolValue(false),
				"EnableFirstSeenTimestamp":       codec.BoolValue(true),
				"EnableLastSeenTimestamp":        codec.BoolValue(true),
				"EnableTagSeenCount":             codec.BoolValue(true),
				"EnableAccessSpecID":             codec.BoolValue(false),
			}},
		},
	}

	return &codec.Parameter{
		Name: "ROSpec",
		Fields: map[string]codec.Value{
			"ROSpecID":     codec.UintValue(uint64(ro.ROSpecID)),
			"Priority":     codec.UintValue(uint64(ro.Priority)),
			"CurrentState": codec.UintValue(0),
		},
		Params: []*codec.Parameter{
			{Name: "ROBoundarySpec", Params: []*codec.Parameter{
				{Name: "ROSpecStartTrigger", Fields: map[string]codec.Value{"TriggerType": codec.UintValue(0)}},
				{Name: "ROSpecStopTrigger", Fields: map[string]codec.Value{"TriggerType": codec.UintValue(0), "DurationTriggerValue": codec.UintValue(0)}},
			}},
			aiSpec,
			reportSpec,
		},
	}
}

func antennaArrayValue(ids []uint16) codec.Value {
	b := make([]byte, len(ids)*2)
	for i, id := range ids {
		b[2*i] = byte(id >> 8)
		b[2*i+1] = byte(id)
	}
	return codec.BytesValue(b)
}

func cmdAudit() *cobra.Command {
	var n int
	c := &cobra.Command{
		Use:   "audit AUDIT-LOG-PATH",
		Short: "Print the most recent entries from a session's audit log",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := session.OpenAuditLog(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "llrpctl: %v\n", err)
				os.Exit(1)
			}
			defer a.Close()

			entries, err := a.Recent(n)
			if err != nil {
				fmt.Fprintf(os.Stderr, "llrpctl: %v\n", err)
				os.Exit(1)
			}
			for _, e := range entries {
				fmt.Printf("%s  %-8s  id=%-6d  %s\n", e.RecordedAt, e.Direction, e.MessageID, e.Message)
			}
		},
	}
	c.Flags().IntVarP(&n, "limit", "n", 50, "number of entries to print")
	return c
}

func printMessage(msg *codec.Message) {
	fmt.Printf("%s (id=%d)\n", msg.Name, msg.ID)
	for name, v := range msg.Fields {
		fmt.Printf("  %s = %s\n", name, renderValue(v))
	}
	for _, p := range msg.Params {
		printParameter(p, 1)
	}
}

func printParameter(p *codec.Parameter, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Printf("%s%s\n", indent, p.Name)
	for name, v := range p.Fields {
		fmt.Printf("%s  %s = %s\n", indent, name, renderValue(v))
	}
	for _, child := range p.Params {
		printParameter(child, depth+1)
	}
}

func renderValue(v codec.Value) string {
	switch v.Type {
	case codec.KindString:
		return v.S
	case codec.KindBytes:
		return fmt.Sprintf("% x", v.B)
	case codec.KindInt:
		return fmt.Sprintf("%d", v.I)
	case codec.KindBool:
		return fmt.Sprintf("%t", v.Bool)
	default:
		return fmt.Sprintf("%d", v.U)
	}
}
