package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"

	"gopkg.in/yaml.v3"
)

// buildInfo describes the running binary
type buildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// versionsFile mirrors versions.yaml
type versionsFile struct {
	Project struct {
		Version string `yaml:"version"`
	} `yaml:"project"`
	Git struct {
		Commit string `yaml:"commit"`
		Branch string `yaml:"branch"`
	} `yaml:"git"`
	Build struct {
		Time      string `yaml:"time"`
		GoVersion string `yaml:"go_version"`
	} `yaml:"build"`
}

// applyTo overwrites the fields of info that the file sets
func (f *versionsFile) applyTo(info *buildInfo) {
	for dst, src := range map[*string]string{
		&info.Version:   f.Project.Version,
		&info.Commit:    f.Git.Commit,
		&info.Branch:    f.Git.Branch,
		&info.BuildTime: f.Build.Time,
		&info.GoVersion: f.Build.GoVersion,
	} {
		if src != "" {
			*dst = src
		}
	}
}

func runVersion(args []string, stdout, stderr io.Writer) int {
	format, err := parseVersionFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}

	info := loadBuildInfo([]string{".", "..", filepath.Join("..", "..")})

	switch format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(info); err != nil {
			return ExitCodeError
		}
	default:
		fmt.Fprintf(stdout, VersionTextTemplate+FmtNewline,
			info.Version, info.Commit, info.Branch, info.BuildTime, info.GoVersion)
	}
	return ExitCodeSuccess
}

// parseVersionFlags returns the requested output format
func parseVersionFlags(args []string) (string, error) {
	fs := flag.NewFlagSet(CmdNameVersion, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var format string
	fs.StringVar(&format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if format != OutputFormatText && format != OutputFormatJSON {
		return "", errors.New(ErrMsgInvalidFormat)
	}
	return format, nil
}

// loadBuildInfo starts from the module build information embedded by the
// Go toolchain and applies the first readable versions.yaml in dirs.
func loadBuildInfo(dirs []string) *buildInfo {
	info := &buildInfo{
		Version:   VersionUnknown,
		Commit:    VersionUnknown,
		Branch:    VersionUnknown,
		BuildTime: VersionUnknown,
		GoVersion: runtime.Version(),
	}
	if embedded, ok := debug.ReadBuildInfo(); ok && embedded.Main.Version != "" && embedded.Main.Version != "(devel)" {
		info.Version = embedded.Main.Version
	}

	for _, dir := range dirs {
		var file versionsFile
		if err := readVersionsFile(filepath.Join(dir, VersionsFileName), &file); err != nil {
			continue
		}
		file.applyTo(info)
		break
	}

	return info
}

func readVersionsFile(path string, file *versionsFile) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return yaml.NewDecoder(f).Decode(file)
}
