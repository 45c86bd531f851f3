// rc4seal encrypts a file with a known key under the same stream cipher the
// cracker targets, which is handy for producing search targets.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/blkph0x/rc4fun/algo/rc4"

	"github.com/spf13/pflag"
)

var param struct {
	input  string
	output string
	key    string
}

func init() {
	pflag.StringVarP(&param.input, "input", "i", "", "Input file")
	pflag.StringVarP(&param.output, "output", "o", "encrypted_file.bin", "Output file")
	pflag.StringVarP(&param.key, "key", "k", "", "Encryption key")
}

func evaluate() error {
	if len(param.input) == 0 {
		return errors.New("--input: required parameter missing")
	}
	if len(param.key) == 0 {
		return errors.New("--key: required parameter missing")
	}

	data, err := os.ReadFile(param.input)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}

	rc4.EncryptInplace([]byte(param.key), data)

	err = os.WriteFile(param.output, data, 0666)
	if err != nil {
		return fmt.Errorf("failed to save output file: %w", err)
	}
	fmt.Printf("%d bytes written to %s\n", len(data), param.output)
	return nil
}

func main() {
	pflag.Parse()

	err := evaluate()
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		os.Exit(1)
	}
}
