package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/blkph0x/rc4fun/crack"

	"github.com/spf13/pflag"
)

const defaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// not an error: the exhausted outcome is already reported by evaluate, main
// only maps it to a non-zero exit
var errExhausted = errors.New("key space exhausted")

var param struct {
	input        string
	output       string
	alphabet     string
	maxKeyLength int
	workers      int
	sequential   bool
}

func init() {
	pflag.StringVarP(&param.input, "input", "i", "encrypted_file.bin", "Encrypted input file")
	pflag.StringVarP(&param.output, "output", "o", "decrypted_file.bin", "Decrypted output file")
	pflag.StringVarP(&param.alphabet, "alphabet", "a", defaultAlphabet, "Key alphabet")
	pflag.IntVarP(&param.maxKeyLength, "max-key-length", "l", 5, "Maximum key length to try")
	pflag.IntVarP(&param.workers, "workers", "j", 0, "Parallel workers per trial (0 = all CPUs)")
	pflag.BoolVarP(&param.sequential, "sequential", "S", false, "Decrypt each trial in a single pass instead of in parallel")
}

func evaluate() error {
	ciphertext, err := os.ReadFile(param.input)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	if len(ciphertext) == 0 {
		return errors.New("input file is empty, nothing to search for")
	}

	var backend crack.Backend
	if param.sequential {
		backend = &crack.Sequential{}
	} else {
		backend = &crack.Parallel{Workers: param.workers}
	}

	fmt.Printf("searching %d candidate keys over %d bytes of ciphertext\n",
		crack.Keyspace(len(param.alphabet), param.maxKeyLength), len(ciphertext))

	res, err := crack.Search(backend, ciphertext, []byte(param.alphabet), param.maxKeyLength)
	if err != nil {
		return err
	}

	if !res.Found() {
		fmt.Println("No valid key found")
		fmt.Printf("Time taken: %f seconds\n", res.Elapsed.Seconds())
		return errExhausted
	}

	fmt.Printf("Decryption successful, key found: %s\n", string(res.Key))
	fmt.Printf("Time taken: %f seconds\n", res.Elapsed.Seconds())

	err = os.WriteFile(param.output, res.Plaintext, 0666)
	if err != nil {
		return fmt.Errorf("failed to save output file: %w", err)
	}
	fmt.Printf("Decryption successful, output written to %s\n", param.output)
	return nil
}

func main() {
	pflag.Parse()

	err := evaluate()
	if err != nil {
		if !errors.Is(err, errExhausted) {
			fmt.Printf("Error: %s\n", err.Error())
		}
		os.Exit(1)
	}
}
