package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptYesNo asks a yes/no question on out and reads the answer from
// reader. An empty answer returns defaultVal.
func promptYesNo(reader *bufio.Reader, out io.Writer, prompt string, defaultVal bool) bool {
	defaultStr := "Y/n"
	if !defaultVal {
		defaultStr = "y/N"
	}

	fmt.Fprintf(out, "%s [%s]: ", prompt, defaultStr)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))

	if response == "" {
		return defaultVal
	}
	return response == "y" || response == "yes"
}
