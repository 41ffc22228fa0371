package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/somali-phrasebook/internal/app/builder/phrasejson"
	"github.com/heartmarshall/somali-phrasebook/internal/config"
	"github.com/heartmarshall/somali-phrasebook/internal/domain"
)

const catCSV = "id,english,somali,italic\n1,cat,bisad,N\n2,cat,muraq,N\n3,feline,bisad,Y\n"

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func buildConfig(input, output string) config.BuildConfig {
	return config.BuildConfig{
		InputPath:      input,
		OutputPath:     output,
		ItalicMarker:   "Y",
		ItalicConflict: "last",
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRun_WritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "vocab.csv")
	output := filepath.Join(dir, "phrase-book.json")
	writeFile(t, input, catCSV)

	var stdout bytes.Buffer
	err := run(context.Background(), quietLogger(), buildConfig(input, output), false, strings.NewReader(""), &stdout)
	require.NoError(t, err)
	assert.Zero(t, stdout.Len(), "stdout must stay empty when an output path is set")

	records, err := phrasejson.DecodeFile(output)
	require.NoError(t, err)
	require.Len(t, records, 4)
	for _, r := range records {
		assert.Len(t, r.AltKeyPhrases, 1)
		assert.Len(t, r.ValuePhrases, 2)
	}
}

func TestRun_StdinToStdout(t *testing.T) {
	var stdout bytes.Buffer
	err := run(context.Background(), quietLogger(), buildConfig("", ""), false, strings.NewReader(catCSV), &stdout)
	require.NoError(t, err)

	records, err := phrasejson.Decode(&stdout)
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestRun_MalformedInputLeavesOutputUntouched(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "vocab.csv")
	output := filepath.Join(dir, "phrase-book.json")
	writeFile(t, input, "id,english,somali,italic\n1,cat,bisad,N\n2,,muraq,N\n")
	writeFile(t, output, "previous build")

	var stdout bytes.Buffer
	err := run(context.Background(), quietLogger(), buildConfig(input, output), false, nil, &stdout)
	require.ErrorIs(t, err, domain.ErrMalformedInput)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "previous build", string(got))
	assert.Zero(t, stdout.Len())
}

func TestRun_MalformedInputCreatesNoFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "phrase-book.json")

	err := run(context.Background(), quietLogger(), buildConfig("", output), false,
		strings.NewReader("id,english,somali,italic\n1,cat\n"), io.Discard)
	require.ErrorIs(t, err, domain.ErrMalformedInput)

	_, err = os.Stat(output)
	assert.True(t, os.IsNotExist(err), "output file must not be created")
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	output := filepath.Join(t.TempDir(), "phrase-book.json")

	var stdout bytes.Buffer
	err := run(context.Background(), quietLogger(), buildConfig("", output), true, strings.NewReader(catCSV), &stdout)
	require.NoError(t, err)

	_, err = os.Stat(output)
	assert.True(t, os.IsNotExist(err))
	assert.Zero(t, stdout.Len())
}

func TestRun_MissingInputFile(t *testing.T) {
	err := run(context.Background(), quietLogger(), buildConfig("/nonexistent/vocab.csv", ""), false, nil, io.Discard)
	require.Error(t, err)
}

func TestParseFlags_OverridesOnlyExplicitFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want config.BuildConfig
	}{
		{
			name: "no flags keeps config",
			args: nil,
			want: config.BuildConfig{InputPath: "in.csv", ItalicConflict: "first", Indent: true},
		},
		{
			name: "indent can be switched off",
			args: []string{"--indent=false"},
			want: config.BuildConfig{InputPath: "in.csv", ItalicConflict: "first", Indent: false},
		},
		{
			name: "paths and policy override",
			args: []string{"--input", "other.csv", "--output", "out.json", "--italic-conflict", "any"},
			want: config.BuildConfig{InputPath: "other.csv", OutputPath: "out.json", ItalicConflict: "any", Indent: true},
		},
		{
			name: "empty input resets to stdin",
			args: []string{"--input="},
			want: config.BuildConfig{ItalicConflict: "first", Indent: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := parseFlags(tt.args)
			require.NoError(t, err)

			cfg := config.BuildConfig{InputPath: "in.csv", ItalicConflict: "first", Indent: true}
			flags.apply(&cfg)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestParseFlags_DryRunAndVersion(t *testing.T) {
	flags, err := parseFlags([]string{"--dry-run", "--version", "--config", "pb.yaml"})
	require.NoError(t, err)
	assert.True(t, flags.dryRun)
	assert.True(t, flags.version)
	assert.Equal(t, "pb.yaml", flags.configPath)
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := parseFlags([]string{"--nope"})
	assert.Error(t, err)
}
