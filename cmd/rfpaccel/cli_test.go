package rfpaccel

import (
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
)

func TestRunCmd_Flags(t *testing.T) {
	type testCase struct {
		name   string
		args   []string
		expect RunCmd
	}

	cases := []testCase{
		{
			name: "long flags",
			args: []string{
				"--file", "rfp.pdf", "--file", "appendix.docx",
				"--client", "Acme Retail Group",
				"--title", "Cloud Migration Services",
				"--member", "ana@intelia.com",
				"--step", "1", "--step", "2",
				"--context-out", "context.json",
			},
			expect: RunCmd{
				Files:      []string{"rfp.pdf", "appendix.docx"},
				Client:     "Acme Retail Group",
				Title:      "Cloud Migration Services",
				Members:    []string{"ana@intelia.com"},
				Steps:      []int{1, 2},
				ContextOut: "context.json",
			},
		},
		{
			name: "short flags",
			args: []string{"-s", "rfp.pdf", "-c", "Acme", "-t", "Cloud", "-m", "bo@intelia.com", "-o", "ctx.json"},
			expect: RunCmd{
				Files:      []string{"rfp.pdf"},
				Client:     "Acme",
				Title:      "Cloud",
				Members:    []string{"bo@intelia.com"},
				ContextOut: "ctx.json",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := &RunCmd{}
			parser := flags.NewParser(cmd, flags.HelpFlag|flags.PassDoubleDash)
			_, err := parser.ParseArgs(tc.args)
			assert.EqualValues(t, nil, err)
			assert.EqualValues(t, tc.expect, *cmd)
		})
	}
}

func TestServeCmd_DefaultAddr(t *testing.T) {
	cmd := &ServeCmd{}
	parser := flags.NewParser(cmd, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs([]string{})
	assert.EqualValues(t, nil, err)
	assert.EqualValues(t, ":8080", cmd.Addr)
}

func TestExtractFlag(t *testing.T) {
	type testCase struct {
		name   string
		args   []string
		short  string
		long   string
		expect string
	}

	cases := []testCase{
		{
			name:   "short form",
			args:   []string{"-f", "config.yaml", "run"},
			short:  "-f",
			long:   "--config",
			expect: "config.yaml",
		},
		{
			name:   "long form with equals",
			args:   []string{"run", "--config=config.yaml"},
			short:  "-f",
			long:   "--config",
			expect: "config.yaml",
		},
		{
			name:   "long form separate value",
			args:   []string{"--log-level", "debug", "run"},
			long:   "--log-level",
			expect: "debug",
		},
		{
			name:   "absent",
			args:   []string{"run", "-s", "rfp.pdf"},
			short:  "-f",
			long:   "--config",
			expect: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualValues(t, tc.expect, extractFlag(tc.args, tc.short, tc.long))
		})
	}
}
