// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff compares expected and actual tool output in tests.
package diff

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Diff returns a human-readable description of the differences between
// want and got, or "" if they are the same. If the "diff" command is
// available, this is a unified diff.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	cmd := "diff"
	if runtime.GOOS == "plan9" {
		cmd = "/bin/ape/diff"
	}
	if _, err := exec.LookPath(cmd); err != nil {
		return fmt.Sprintf("diff command unavailable\nwant: %q\ngot:  %q", want, got)
	}

	wantPath, err := writeTemp("want", want)
	if err != nil {
		return err.Error()
	}
	defer os.Remove(wantPath)
	gotPath, err := writeTemp("got", got)
	if err != nil {
		return err.Error()
	}
	defer os.Remove(gotPath)

	data, err := exec.Command(cmd, "-u", wantPath, gotPath).CombinedOutput()
	if len(data) > 0 {
		// diff exits non-zero when the inputs differ.
		return string(data)
	}
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("want: %q\ngot:  %q", want, got)
}

func writeTemp(prefix, content string) (string, error) {
	f, err := os.CreateTemp("", "json5bench-"+prefix)
	if err != nil {
		return "", err
	}
	_, err = f.WriteString(content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
