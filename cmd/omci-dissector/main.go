/*
 * Copyright 2024-present Open Networking Foundation (ONF) and the ONF Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opencord/voltha-lib-go/v7/pkg/log"

	"github.com/opencord/omci-dissector-go/config/version"
	"github.com/opencord/omci-dissector-go/internal/pkg/config"
)

func printVersion(appName string) {
	fmt.Println(appName)
	fmt.Println(version.VersionInfo.String("  "))
}

func printBanner() {
	fmt.Println("   ___  __  __  ____ ___   ____  _                     _ ")
	fmt.Println("  / _ \\|  \\/  |/ ___|_ _| |  _ \\(_)___ ___  ___  ___| |_ ___  _ __")
	fmt.Println(" | | | | |\\/| | |    | |  | | | | / __/ __|/ _ \\/ __| __/ _ \\| '__|")
	fmt.Println(" | |_| | |  | | |___ | |  | |_| | \\__ \\__ \\  __/ (__| || (_) | |")
	fmt.Println("  \\___/|_|  |_|\\____|___| |____/|_|___/___/\\___|\\___|\\__\\___/|_|")
	fmt.Println("                                                                    ")
}

// waitForExit returns 0 on a closing signal, 2 when ctx ends first
func waitForExit(ctx context.Context) int {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	defer signal.Stop(signalChannel)

	select {
	case <-ctx.Done():
		return 2
	case s := <-signalChannel:
		logger.Infow(ctx, "closing-signal-received", log.Fields{"signal": s})
		return 0
	}
}

func main() {
	start := time.Now()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cf := config.NewDissectorFlags()
	if err := cf.ParseCommandArguments(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defaultAppName := cf.InstanceID + "_" + version.GetCodeVersion(ctx)

	// Setup logging

	logLevel, err := log.StringToLogLevel(cf.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot setup logging, %s\n", err)
		os.Exit(2)
	}

	// Setup default logger - applies for packages that do not have specific logger set
	if _, err := log.SetDefaultLogger(log.JSON, logLevel, log.Fields{"instanceId": cf.InstanceID}); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot setup logging, %s\n", err)
		os.Exit(2)
	}

	// Update all loggers (provisioned via init) with a common field
	if err := log.UpdateAllLoggers(log.Fields{"instanceId": cf.InstanceID}); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot setup logging, %s\n", err)
		os.Exit(2)
	}

	log.SetAllLogLevel(logLevel)

	os.Exit(realMain(ctx, cancel, cf, defaultAppName, start))
}

// realMain keeps the deferred cleanups ahead of os.Exit
func realMain(ctx context.Context, cancel context.CancelFunc, cf *config.DissectorFlags, appName string, start time.Time) int {
	defer func() {
		_ = log.CleanUp()
	}()
	// Print version / build information and exit
	if cf.DisplayVersionOnly {
		printVersion(appName)
		return 0
	}
	logger.Infow(ctx, "config", log.Fields{"StartName": appName})
	logger.Infow(ctx, "config", log.Fields{"BuildVersion": version.VersionInfo.String("  ")})
	logger.Infow(ctx, "config", log.Fields{"Arguments": os.Args[1:]})

	// Print banner if specified
	if cf.Banner {
		printBanner()
	}

	logger.Infow(ctx, "config", log.Fields{"config": *cf})

	var stdout io.Writer = os.Stdout
	if cf.Interactive {
		rl, err := newReadline()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		stdout = rl.Stdout()
		dh, err := newDissector(ctx, cf, stdout)
		if err != nil {
			rl.Close()
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer dh.stop(ctx)
		p := newPrompt(dh, stdout)
		go runInteractive(ctx, cancel, rl, p)
		code := waitForExit(ctx)
		if code == 2 {
			code = 0
		}
		logger.Infow(ctx, "interactive-session-ended", log.Fields{"code": code, "frames": p.index})
		return code
	}

	dh, err := newDissector(ctx, cf, stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer dh.stop(ctx)

	src, err := dh.openSource(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() {
		_ = src.Close()
	}()

	done := make(chan error, 1)
	go func() {
		done <- dh.run(ctx, src)
		cancel()
	}()
	code := waitForExit(ctx)
	if code == 0 {
		// interrupted, unblock a pending read
		cancel()
		_ = src.Close()
	}
	runErr := <-done
	switch {
	case runErr != nil && !errors.Is(runErr, context.Canceled):
		fmt.Fprintln(os.Stderr, runErr)
		code = 1
	case code == 2:
		code = 0
	}

	elapsed := time.Since(start)
	logger.Infow(ctx, "run-time", log.Fields{"Name": appName, "time": elapsed / time.Microsecond})
	return code
}
