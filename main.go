package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/YukiCheZ/risk-patterns-mining/cmd"
	"github.com/YukiCheZ/risk-patterns-mining/config"
)

func init() {
	cmd.UsageMessage = "risk-patterns --help"
	cmd.ExtendedMessage = `
risk-patterns - mine frequent transfer patterns from a transaction graph

$ risk-patterns -o <path> --support=<int> [Global Options] \
    <input-dir> \
    [<reporter> [Reporter Options]]

Note: <input-dir> holds the sources account, card, account_to_account and
      account_to_card. Each may also be named with a .csv, .gz or .csv.gz
      extension. A missing source is treated as empty.

Note: If you don't supply a reporter by default it will use 'chain log file'.
      See the the documentations for Reporters for details.


Global Options
    -h, --help                view this message
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (required)
                              NB: will overwrite contents of dir
    -c, --cache=<path>        path to cache directory (optional)
                              NB: will overwrite contents of dir
    --support=<int>           minimum support of patterns, >= 0. required
                              unless the config file or RPM_SUPPORT sets it
    --workers=<int>           goroutines used by the 2 and 3 edge stages
                              (default 1, -1 for one per cpu)
    --config=<path>           yaml config file. flags override its values.
    --all-levels              also report the frequent single edges and two
                              edge walks
    --fold-rotations          report each triangle once instead of once per
                              starting edge
    --skip-log=<level>        don't output the given log level.

Environment
    RPM_SUPPORT               minimum support (overrides the config file)
    RPM_WORKERS               workers (overrides the config file)

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Input Format
    account, card             id,name,...
    account_to_account        src,targ,_,amt,strategy,_,buscode,...
    account_to_card           src,targ,_,amt,strategy,_,buscode,...

    Card ids are shifted by 800000 so they never collide with account ids.
    amt is truncated to an int. strategy and buscode keep the last digit.
    Fields that can not be parsed become -1.

Reporters
    chain                     chain several reporters together (end the chain
                              with endchain)
    log                       log the patterns
    file                      write the patterns as a json array to a file in
                              the output dir
    dir                       write each pattern with its support and lattice
                              to its own directory in the output dir
    count                     write the number of patterns to a file
    metrics                   write prometheus metrics (counts by topology and
                              a support histogram) to a file
    unique                    takes an "inner reporter" but only passes the
                              first rotation of each triangle to it.
    skip                      takes an "inner reporter" and passes it every
                              n-th pattern.

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -p, patterns=<name>   the prefix of the name of the file in the output
                              directory to write the patterns (default patterns)
        --lattice=<name>      also write the sub-pattern lattice of each pattern
                              to <name>.jsonl

    dir Options
        -d, dir-name=<name>   the directory in the output dir to write the
                              patterns into (default patterns)

    count Options
        -f, filename=<name>   (default count)

    metrics Options
        -f, filename=<name>   (default metrics.prom)

    unique Options
        --histogram=<name>    if set unique will write the histogram of how many
                              times each pattern name was reported.

    skip Options
        -n, every=<int>       pass every n-th pattern (default 1)

    Examples

        $ risk-patterns -o /tmp/out --support=10 ./data/

        $ risk-patterns -o /tmp/out --support=10 --workers=-1 ./data/ \
            chain log metrics file --lattice=lattice

        $ risk-patterns -o /tmp/out --support=10 ./data/ \
            chain \
                file -p all-patterns \
                unique --histogram=rotations \
                    file -p unique-patterns \
            endchain
`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	args, optargs, err := getopt.GetOpt(
		argv,
		"ho:c:",
		[]string{
			"help",
			"output=", "cache=",
			"reporters",
			"support=",
			"workers=",
			"config=",
			"all-levels",
			"fold-rotations",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments try:")
		fmt.Fprintf(os.Stderr, "$ %v --help\n", os.Args[0])
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	confPath := ""
	for _, oa := range optargs {
		if oa.Opt() == "--config" {
			confPath = cmd.AssertFile(oa.Arg())
		}
	}
	conf, err := config.Load(confPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["badfile"])
	}

	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			conf.Output = oa.Arg()
		case "-c", "--cache":
			conf.Cache = oa.Arg()
		case "--support":
			conf.Support = cmd.ParseInt(oa.Arg())
		case "--workers":
			conf.Parallelism = cmd.ParseInt(oa.Arg())
		case "--config":
		case "--all-levels":
			conf.AllLevels = true
		case "--fold-rotations":
			conf.FoldRotations = true
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if err := conf.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if conf.Output == "" {
			fmt.Fprintf(os.Stderr, "You must supply an output dir (-o)\n")
		}
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	conf.Output = cmd.EmptyDir(conf.Output)
	if conf.Cache != "" {
		conf.Cache = cmd.EmptyDir(conf.Cache)
	}

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errors.Logf("DEBUG", "args %v", strings.Join(args, " "))
	return cmd.Main(ctx, args, conf)
}
