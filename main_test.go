package main

import (
	"bluebot/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Command_Tree(t *testing.T) {
	root := newRootCmd()
	names := map[string]bool{}
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	for _, name := range []string{"run", "reply", "like-follow", "post-image", "post-text", "quota", "search"} {
		assert.True(t, names[name], name)
	}

	cmd, _, err := root.Find([]string{"search"})
	require.Nil(t, err)
	assert.NotNil(t, cmd.Args(cmd, []string{}))
	assert.Nil(t, cmd.Args(cmd, []string{"#golang"}))
	assert.Equal(t, "25", cmd.Flags().Lookup("limit").DefValue)

	cmd, _, err = root.Find([]string{"like-follow"})
	require.Nil(t, err)
	assert.Nil(t, cmd.Args(cmd, []string{}))
	assert.Nil(t, cmd.Args(cmd, []string{"nftart"}))
	assert.NotNil(t, cmd.Args(cmd, []string{"a", "b"}))
}

func Test_Init_Logger(t *testing.T) {
	cfg := &shared.Config{LogLevel: "Debug"}
	l := initLogger(cfg)
	assert.NotNil(t, l)
}
