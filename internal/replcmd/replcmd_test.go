package replcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLoad(t *testing.T) {
	cmd, err := Parse(`load "proof.dn"`)
	assert.Nil(t, err)
	assert.NotNil(t, cmd.Load)
	assert.Equal(t, "proof.dn", cmd.Load.Path)
}

func TestParseCheckWithoutArgument(t *testing.T) {
	cmd, err := Parse("check")
	assert.Nil(t, err)
	assert.NotNil(t, cmd.Check)
	assert.Nil(t, cmd.Check.Upto)
}

func TestParseCheckWithArgument(t *testing.T) {
	cmd, err := Parse("check 3")
	assert.Nil(t, err)
	assert.NotNil(t, cmd.Check)
	assert.NotNil(t, cmd.Check.Upto)
	assert.Equal(t, 3, *cmd.Check.Upto)
}

func TestParseContextQuitHelp(t *testing.T) {
	for _, line := range []string{"context", "quit", "help"} {
		cmd, err := Parse(line)
		assert.Nil(t, err)
		assert.NotNil(t, cmd)
	}
}

func TestParseRejectsAppend(t *testing.T) {
	_, err := Parse("append 4;;a;EAndL 1")
	assert.NotNil(t, err)
}

func TestParseAppendExtractsRawRecord(t *testing.T) {
	assert.True(t, IsAppend("append 4;;a;EAndL 1"))

	cmd, err := ParseAppend("append 4;;a;EAndL 1")
	assert.Nil(t, err)
	assert.Equal(t, "4;;a;EAndL 1", cmd.Record)
}

func TestParseAppendRejectsNonAppendLine(t *testing.T) {
	_, err := ParseAppend("check 3")
	assert.NotNil(t, err)
}

func TestParseUnknownCommandFails(t *testing.T) {
	_, err := Parse("frobnicate")
	assert.NotNil(t, err)
}
