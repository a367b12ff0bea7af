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
	"io"
	"os"
	"strings"

	"github.com/amazon-ion/ion-go/ion"
	"github.com/amazon-ion/simpleion-go/simpleion"
)

// process reads the specified input file(s) and re-writes the contents
// in the specified format.
func process(args []string) error {
	p, err := newProcessor(args)
	if err != nil {
		return err
	}
	return p.run()
}

type processor struct {
	infs   []string
	outf   string
	format string
	model  simpleion.ValueModel

	out io.WriteCloser
	enc *simpleion.Encoder
}

func newProcessor(args []string) (*processor, error) {
	ret := &processor{format: "text", model: simpleion.MayBeBare}

	i := 0
	for ; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			break
		}
		if arg == "-" || arg == "--" {
			i++
			break
		}

		switch arg {
		case "-o", "--output":
			i++
			if i >= len(args) {
				return nil, errors.New("no output file specified")
			}
			ret.outf = args[i]

		case "-f", "--output-format":
			i++
			if i >= len(args) {
				return nil, errors.New("no output format specified")
			}
			ret.format = args[i]

		case "--symbols-as-text":
			ret.model |= simpleion.SymbolAsText

		case "--single-map":
			ret.model |= simpleion.StructAsSingleMap

		default:
			return nil, errors.New("unrecognized option \"" + arg + "\"")
		}
	}

	ret.infs = args[i:]
	if len(ret.infs) == 0 {
		return nil, errors.New("no input files specified")
	}

	return ret, nil
}

func (p *processor) run() error {
	if err := p.open(); err != nil {
		return err
	}

	for _, inf := range p.infs {
		if err := p.processFile(inf); err != nil {
			p.out.Close()
			return err
		}
	}

	if err := p.enc.Finish(); err != nil {
		p.out.Close()
		return err
	}
	return p.out.Close()
}

func (p *processor) open() error {
	if p.outf == "" {
		p.out = nopCloser{os.Stdout}
	} else {
		f, err := os.Create(p.outf)
		if err != nil {
			return err
		}
		p.out = f
	}

	switch p.format {
	case "text":
		p.enc = simpleion.NewEncoder(ion.NewTextWriterOpts(p.out, ion.TextWriterQuietFinish), 0)
	case "binary":
		p.enc = simpleion.NewEncoder(ion.NewBinaryWriter(p.out), 0)
	default:
		p.out.Close()
		return errors.New("unrecognized output format \"" + p.format + "\"")
	}
	return nil
}

func (p *processor) processFile(inf string) error {
	f, err := os.Open(inf)
	if err != nil {
		return err
	}

	it := simpleion.NewIterator(f, p.model)
	defer it.Close()

	for it.Next() {
		if err := p.enc.Encode(it.Value()); err != nil {
			return err
		}
	}
	return it.Err()
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
