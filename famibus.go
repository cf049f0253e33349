// This file is part of famibus.
//
// famibus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// famibus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with famibus.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/pkg/errors"

	"github.com/famibus/famibus/cartridgeloader"
	"github.com/famibus/famibus/digest"
	"github.com/famibus/famibus/environment"
	"github.com/famibus/famibus/govern"
	"github.com/famibus/famibus/hardware"
	"github.com/famibus/famibus/hardware/audio"
	"github.com/famibus/famibus/hardware/memory/cartridge"
	"github.com/famibus/famibus/hardware/preferences"
	"github.com/famibus/famibus/logger"
	"github.com/famibus/famibus/modalflag"
	"github.com/famibus/famibus/patch"
	"github.com/famibus/famibus/paths"
	"github.com/famibus/famibus/performance"
	"github.com/famibus/famibus/performance/limiter"
	"github.com/famibus/famibus/prefs"
	"github.com/famibus/famibus/statsview"
	"github.com/famibus/famibus/stepper"
	"github.com/famibus/famibus/version"
	"github.com/famibus/famibus/wavwriter"
)

// exit values
const (
	exitOK        = 0
	exitArgs      = 10
	exitEmulation = 20
)

func main() {
	// the context is cancelled on the first interrupt signal. a second
	// interrupt kills the program in the normal way
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. It returns the
// value to use with os.Exit().
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "STEP", "INFO", "GRAPH", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)
	case "STEP":
		err = step(md)
	case "INFO":
		err = info(md)
	case "GRAPH":
		err = graph(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		// interrupting the emulation is not an error
		if errors.Cause(err) == context.Canceled {
			return exitOK
		}
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitEmulation
	}

	return exitOK
}

// the flags shared by every mode that creates an emulation.
type emulationFlags struct {
	spec   *string
	prefs  *string
	strict *bool
	echo   *bool
}

func addEmulationFlags(md *modalflag.Modes) emulationFlags {
	return emulationFlags{
		spec:   md.AddString("tv", "", "television specification: NTSC, PAL (default from preferences)"),
		prefs:  md.AddString("prefs", "", "preferences for this run only: \"key::value; key::value\""),
		strict: md.AddBool("strict", true, "only allow one goroutine to step the emulation"),
		echo:   md.AddBool("log", false, "echo log entries to the output"),
	}
}

// cartridgeArg returns the single cartridge argument of the mode.
func cartridgeArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

// loadCartridge loads and decodes the named cartridge file.
func loadCartridge(filename string) (cartridgeloader.Loader, *cartridge.Cartridge, error) {
	cl := cartridgeloader.NewLoader(filename)
	img, err := cl.Image()
	if err != nil {
		return cl, nil, err
	}
	cart, err := cartridge.NewCartridge(img)
	if err != nil {
		return cl, nil, err
	}
	return cl, cart, nil
}

// createNES creates a NES with the cartridge inserted. Flags that override
// preferences are applied before the NES is created.
func createNES(md *modalflag.Modes, flgs emulationFlags, cart *cartridge.Cartridge) (*hardware.NES, error) {
	if *flgs.prefs != "" {
		prefs.PushCommandLineStack(*flgs.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(md.Output, "* unused preferences: %s\n", unused)
			}
		}()
	}

	if *flgs.echo {
		logger.SetEcho(md.Output)
	}

	p, err := preferences.NewPreferences("")
	if err != nil {
		return nil, err
	}

	if *flgs.spec != "" {
		if err := p.TVSpec.Set(*flgs.spec); err != nil {
			return nil, err
		}
	}
	if err := p.StrictOwnership.Set(*flgs.strict); err != nil {
		return nil, err
	}

	nes, err := hardware.NewNES(environment.MainEmulation, p)
	if err != nil {
		return nil, err
	}

	if err := nes.Insert(cart); err != nil {
		return nil, err
	}

	return nes, nil
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	flgs := addEmulationFlags(md)
	frames := md.AddInt("frames", 0, "number of frames to run for (0 to run until interrupted)")
	fpsCap := md.AddBool("fpscap", true, "cap frame rate to the television specification")
	wav := md.AddBool("wav", false, "record the CPU data bus to a WAV file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	patchFile := md.AddString("patch", "", "patch file to apply to the cartridge")
	dig := md.AddBool("digest", false, "print a digest of CPU bus activity when the emulation ends")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	cl, cart, err := loadCartridge(filename)
	if err != nil {
		return err
	}

	if *patchFile != "" {
		if _, err := patch.CartridgeMemory(cart, *patchFile); err != nil {
			return err
		}
	}

	nes, err := createNES(md, flgs, cart)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	var probe *audio.Probe
	if *wav {
		fn, err := paths.EnsureResourcePath(fmt.Sprintf("%s.wav", paths.UniqueFilename("audio", cl.ShortName())))
		if err != nil {
			return err
		}

		ww, err := wavwriter.New(fn, int(nes.Spec.CPU()*1000000))
		if err != nil {
			return err
		}
		defer func() {
			if err := ww.Close(); err != nil {
				logger.Log(nes.Env, "famibus", err.Error())
			}
		}()

		probe, err = audio.NewProbe(nes.CPU.Data, nes.Env.Prefs.AudioBlock.Get().(int), ww.Write)
		if err != nil {
			return err
		}
		nes.AttachCPU(probe)
	}

	var busDigest *digest.Bus
	if *dig {
		busDigest = digest.NewBus(nes.CPU)
		nes.AttachCPU(busDigest)
	}

	var lim *limiter.FpsLimiter
	if *fpsCap {
		lim, err = limiter.NewFPSLimiter(performance.FramesPerSecond(nes.Spec))
		if err != nil {
			return err
		}
		defer lim.Stop()
	}

	if err := nes.Start(); err != nil {
		return err
	}

	ticksPerFrame := uint64(nes.Spec.MasterTicksPerFrame())
	nextFrame := ticksPerFrame
	frameCount := 0

	err = nes.Run(ctx, func() (govern.State, error) {
		if nes.Clock.Ticks() < nextFrame {
			return govern.Running, nil
		}
		nextFrame += ticksPerFrame
		frameCount++

		if *frames > 0 && frameCount >= *frames {
			return govern.Ending, nil
		}
		if lim != nil {
			lim.Wait()
		}
		return govern.Running, nil
	})

	if probe != nil {
		if ferr := probe.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}

	fmt.Fprintf(md.Output, "%s: %d frames\n", nes, frameCount)
	if busDigest != nil {
		fmt.Fprintf(md.Output, "digest: %s\n", busDigest.Hash())
	}

	return err
}

func step(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addEmulationFlags(md)
	device := md.AddString("device", stepper.DefaultDevice, "terminal device")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	_, cart, err := loadCartridge(filename)
	if err != nil {
		return err
	}

	nes, err := createNES(md, flgs, cart)
	if err != nil {
		return err
	}

	term, err := stepper.OpenTerminal(*device)
	if err != nil {
		return err
	}

	err = stepper.NewStepper(nes, term, term).Loop()
	if cerr := term.Close(); cerr != nil && err == nil {
		err = cerr
	}

	return err
}

func info(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("with no cartridge argument the list of supported mappers is printed")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		fmt.Fprintf(md.Output, "supported mappers: %s\n", strings.Join(cartridge.SupportedMappers(), ", "))
		return nil
	}

	for _, filename := range md.RemainingArgs() {
		cl := cartridgeloader.NewLoader(filename)
		if err := cl.Load(); err != nil {
			return err
		}

		hdr, err := cartridgeloader.ParseHeader(cl.Data)
		if err != nil {
			return err
		}

		fmt.Fprintf(md.Output, "%s (%s)\n", cl.ShortName(), cl.Hash)
		fmt.Fprintf(md.Output, "  %s\n", hdr)

		_, cart, err := loadCartridge(filename)
		if err != nil {
			fmt.Fprintf(md.Output, "  %v\n", err)
			continue
		}
		fmt.Fprintf(md.Output, "  %s\n", strings.ReplaceAll(cart.Summary(), "\n", "\n  "))
	}

	return nil
}

func graph(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addEmulationFlags(md)
	all := md.AddBool("all", false, "graph the entire console and not just the cartridge")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	_, cart, err := loadCartridge(filename)
	if err != nil {
		return err
	}

	nes, err := createNES(md, flgs, cart)
	if err != nil {
		return err
	}

	if *all {
		memviz.Map(md.Output, nes)
	} else {
		memviz.Map(md.Output, nes.Cart)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addEmulationFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	_, cart, err := loadCartridge(filename)
	if err != nil {
		return err
	}

	nes, err := createNES(md, flgs, cart)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, nes, *duration)
}
