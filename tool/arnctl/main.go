/*
Copyright 2025 Gravitational, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command arnctl parses, builds, and validates Amazon Resource Names from
// the command line.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/gravitational/trace"

	"github.com/gravitational/arnkit/arn"
	"github.com/gravitational/arnkit/awsutils"
)

const debugEnvVar = "ARNCTL_DEBUG"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", trace.UserMessage(err))
		os.Exit(1)
	}
}

// cliConf holds the parsed command line.
type cliConf struct {
	debug  bool
	format string

	parseInput string

	partition string
	service   string
	region    string
	accountID string
	resource  string

	roleARN string
}

func run(args []string, out io.Writer) error {
	var cf cliConf

	app := kingpin.New("arnctl", "Parse, build, and validate Amazon Resource Names.")
	app.Flag("debug", "Verbose logging to stderr.").Short('d').Envar(debugEnvVar).BoolVar(&cf.debug)

	parseCmd := app.Command("parse", "Parse an ARN and print its fields.")
	parseCmd.Arg("arn", "The ARN to parse.").Required().StringVar(&cf.parseInput)
	parseCmd.Flag("format", "Output format.").Default("text").EnumVar(&cf.format, "text", "json")

	buildCmd := app.Command("build", "Build an ARN from its fields and print it.")
	buildCmd.Flag("partition", "Partition the resource lives in.").Default("aws").StringVar(&cf.partition)
	buildCmd.Flag("service", "Service namespace, e.g. s3.").Required().StringVar(&cf.service)
	buildCmd.Flag("region", "Region, empty for global resources.").StringVar(&cf.region)
	buildCmd.Flag("account-id", "12-digit account ID.").StringVar(&cf.accountID)
	buildCmd.Flag("resource", "Resource section, kept verbatim.").Required().StringVar(&cf.resource)

	checkRoleCmd := app.Command("check-role", "Check that an ARN is a valid IAM role ARN.")
	checkRoleCmd.Arg("arn", "The role ARN to check.").Required().StringVar(&cf.roleARN)

	command, err := app.Parse(args)
	if err != nil {
		return trace.Wrap(err)
	}

	initLogger(cf.debug)

	switch command {
	case parseCmd.FullCommand():
		return trace.Wrap(onParse(out, cf))
	case buildCmd.FullCommand():
		return trace.Wrap(onBuild(out, cf))
	case checkRoleCmd.FullCommand():
		return trace.Wrap(onCheckRole(out, cf))
	}
	return trace.BadParameter("command %q not configured", command)
}

func initLogger(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// parseOutput is the JSON form of a parsed ARN.
type parseOutput struct {
	Partition string `json:"partition"`
	Service   string `json:"service"`
	Region    string `json:"region,omitempty"`
	AccountID string `json:"account_id,omitempty"`
	Resource  string `json:"resource"`

	ResourceType      string `json:"resource_type,omitempty"`
	ResourceID        string `json:"resource_id,omitempty"`
	ResourceQualifier string `json:"resource_qualifier,omitempty"`
}

func onParse(out io.Writer, cf cliConf) error {
	a, err := arn.Parse(cf.parseInput)
	if err != nil {
		return trace.Wrap(err)
	}
	slog.Debug("Parsed ARN.", "arn", a)

	o := parseOutput{
		Partition: a.Partition(),
		Service:   a.Service(),
		Resource:  a.ResourceString(),
	}
	o.Region, _ = a.Region()
	o.AccountID, _ = a.AccountID()
	o.ResourceType, _ = a.Resource().Type()
	o.ResourceID = a.Resource().ID()
	o.ResourceQualifier, _ = a.Resource().Qualifier()

	if cf.format == "json" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return trace.Wrap(encoder.Encode(o))
	}

	fmt.Fprintln(out, "partition:  ", o.Partition)
	fmt.Fprintln(out, "service:    ", o.Service)
	fmt.Fprintln(out, "region:     ", o.Region)
	fmt.Fprintln(out, "account-id: ", o.AccountID)
	fmt.Fprintln(out, "resource:   ", o.Resource)
	if o.ResourceType != "" {
		fmt.Fprintln(out, "  type:     ", o.ResourceType)
		fmt.Fprintln(out, "  id:       ", o.ResourceID)
	}
	if o.ResourceQualifier != "" {
		fmt.Fprintln(out, "  qualifier:", o.ResourceQualifier)
	}
	return nil
}

func onBuild(out io.Writer, cf cliConf) error {
	a, err := arn.NewBuilder().
		Partition(cf.partition).
		Service(cf.service).
		Region(cf.region).
		AccountID(cf.accountID).
		Resource(cf.resource).
		Build()
	if err != nil {
		return trace.Wrap(err)
	}

	if err := awsutils.IsValidPartition(cf.partition); err != nil {
		slog.Debug("Partition does not look like an AWS partition.", "error", err)
	}
	if cf.accountID != "" {
		if err := awsutils.IsValidAccountID(cf.accountID); err != nil {
			slog.Debug("Account ID does not look like an AWS account ID.", "error", err)
		}
	}

	fmt.Fprintln(out, a.String())
	return nil
}

func onCheckRole(out io.Writer, cf cliConf) error {
	parsed, err := awsutils.ParseRoleARN(cf.roleARN)
	if err != nil {
		return trace.Wrap(err)
	}
	fmt.Fprintf(out, "%s is a valid IAM role ARN (role name %q)\n", parsed, parsed.Resource().ID())
	return nil
}
