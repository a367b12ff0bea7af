/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/amazon-ion/simpleion-go/internal"
	"github.com/amazon-ion/simpleion-go/simpleion"
)

// main is the main entry point for simpleion.
func main() {
	if len(os.Args) <= 1 {
		printHelp()
		return
	}

	var err error

	switch os.Args[1] {
	case "help", "--help", "-h":
		printHelp()

	case "version", "--version", "-v":
		err = printVersion()

	case "process":
		err = process(os.Args[2:])

	default:
		err = errors.New("unrecognized command \"" + os.Args[1] + "\"")
	}

	if err != nil {
		fmt.Println(err.Error())
		printHelp()
		os.Exit(1)
	}
}

// printHelp prints the help message for the program.
func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  simpleion help")
	fmt.Println("  simpleion version")
	fmt.Println("  simpleion process [args] [file...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  help       Prints this help message.")
	fmt.Println("  version    Prints version information about this tool.")
	fmt.Println("  process    Reads the input file(s) and re-writes the contents in the specified format.")
}

// printVersion prints (in ion) the version info for this tool.
func printVersion() error {
	m := simpleion.NewMultimap()
	m.Add("version", internal.GitCommit)
	m.Add("build_time", internal.BuildTime)

	data, err := simpleion.DumpText(m, 0)
	if err != nil {
		return err
	}

	fmt.Println(string(data))
	return nil
}
