// This file is part of cdgplay.
//
// cdgplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cdgplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cdgplay.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/cdgplay/cdgplay/audio"
	"github.com/cdgplay/cdgplay/cdg"
	"github.com/cdgplay/cdgplay/disassembly"
	"github.com/cdgplay/cdgplay/loader"
	"github.com/cdgplay/cdgplay/logger"
	"github.com/cdgplay/cdgplay/metrics"
	"github.com/cdgplay/cdgplay/modalflag"
	"github.com/cdgplay/cdgplay/paths"
	"github.com/cdgplay/cdgplay/performance"
	"github.com/cdgplay/cdgplay/player"
	"github.com/cdgplay/cdgplay/prefs"
	"github.com/cdgplay/cdgplay/regression"
	"github.com/cdgplay/cdgplay/render"
	"github.com/cdgplay/cdgplay/statsview"
	"github.com/cdgplay/cdgplay/terminal"
	"github.com/cdgplay/cdgplay/version"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

// the stream filename that indicates the stream should be read from stdin
const stdinFilename = "-"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])

	exitVal := launch(ctx, md)

	stop()
	os.Exit(exitVal)
}

func launch(ctx context.Context, md *modalflag.Modes) int {
	md.AddSubModes("PLAY", "DUMP", "KEYFRAMES", "SNAPSHOT", "REGRESS", "PERFORMANCE", "VERSION")

	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsOverride := md.AddString("prefs", "", "override preferences for this run: \"key::value; key::value\"")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}

	if stats != nil && *stats {
		statsview.Launch(ctx, md.Output)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(ctx, md)
	case "DUMP":
		err = dump(md)
	case "KEYFRAMES":
		err = keyframes(md)
	case "SNAPSHOT":
		err = snapshot(md)
	case "REGRESS":
		err = regress(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		return 20
	}

	if *prefsOverride != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
		}
	}

	return 0
}

// the single stream argument for the mode
func streamArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("CD+G stream required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

// load the named stream and create a session for it. a filename of "-" reads
// the stream from stdin, in which case the session cannot seek backwards
func loadSession(filename string) (*cdg.Session, loader.Loader, error) {
	if filename == stdinFilename {
		sess, err := cdg.NewSession(cdg.NewStreamSource(os.Stdin))
		return sess, loader.Loader{Filename: filename}, err
	}

	ld := loader.NewLoader(filename)
	if err := ld.Load(); err != nil {
		return nil, ld, err
	}

	sess, err := cdg.NewSession(ld.Source())
	if err != nil {
		return nil, ld, err
	}

	return sess, ld, nil
}

func play(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	at := md.AddDuration("at", 0, "start position")
	metricsAddr := md.AddString("metrics", "", "serve prometheus metrics on address (eg. localhost:9600)")
	silent := md.AddBool("silent", false, "ignore companion audio file")

	md.AdditionalHelp("keys: left/right seek, up/down seek x10, space pause, q quit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := streamArg(md)
	if err != nil {
		return err
	}

	plPrefs, err := player.NewPreferences()
	if err != nil {
		return err
	}

	sess, ld, err := loadSession(filename)
	if err != nil {
		return err
	}

	// the length of the clock is the length of the audio track if there is
	// one. otherwise it is the length of the stream
	length := sess.Duration()
	if ld.HasAudio() && !*silent {
		trk, err := audio.Probe(ld.Audio)
		if err != nil {
			logger.Logf(logger.Allow, "play", "%v", err)
		} else {
			logger.Logf(logger.Allow, "play", "audio: %s", trk)
			length = trk.Duration
		}
	}

	clk := audio.NewWallClock(length)
	clk.Seek(int(at.Milliseconds()))

	rnd := render.NewANSI(os.Stdout, plPrefs.Scale.Get().(int))
	if err := rnd.Clear(); err != nil {
		return err
	}
	defer rnd.Restore()

	pl := player.NewPlayer(sess, clk, rnd, plPrefs)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		pl.SetMetrics(metrics.NewMetrics(reg))
		g.Go(func() error {
			return metrics.Serve(ctx, *metricsAddr, reg)
		})
	}

	var commands chan player.Command

	if terminal.IsTerminal(os.Stdin) && filename != stdinFilename {
		trm, err := terminal.Open()
		if err != nil {
			return err
		}
		defer trm.Close()

		keys := make(chan terminal.Key)
		commands = make(chan player.Command, 8)

		g.Go(func() error {
			return trm.Keys(ctx, keys)
		})

		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case k := <-keys:
					cmd, ok := player.KeyCommand(k, plPrefs.SeekStep.Get().(int))
					if !ok {
						continue
					}
					select {
					case commands <- cmd:
					case <-ctx.Done():
						return nil
					}
				}
			}
		})
	}

	g.Go(func() error {
		defer cancel()
		return pl.Run(ctx, commands)
	})

	return g.Wait()
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	timestamp := md.AddBool("timestamp", false, "include index and timestamp of each packet")
	bytecode := md.AddBool("bytecode", false, "include the raw bytes of each packet")
	nongraphics := md.AddBool("nongraphics", false, "include packets that are not graphics packets")
	summary := md.AddBool("summary", false, "print a count of each instruction type")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := streamArg(md)
	if err != nil {
		return err
	}

	var src cdg.Source
	if filename == stdinFilename {
		src = cdg.NewStreamSource(os.Stdin)
	} else {
		ld := loader.NewLoader(filename)
		if err := ld.Load(); err != nil {
			return err
		}
		src = ld.Source()
	}

	dsm := disassembly.FromSource(src)

	if *summary {
		return dsm.WriteSummary(md.Output)
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{
		Timestamp:   *timestamp,
		ByteCode:    *bytecode,
		NonGraphics: *nongraphics,
	})
}

func keyframes(md *modalflag.Modes) error {
	md.NewMode()

	memvizFile := md.AddString("memviz", "", "write a graphviz dot file of the keyframe index")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := streamArg(md)
	if err != nil {
		return err
	}

	sess, _, err := loadSession(filename)
	if err != nil {
		return err
	}

	kfs := sess.Keyframes()
	for i, kf := range kfs {
		fmt.Fprintf(md.Output, "%4d %10s %8d clear=%02d\n", i,
			formatDuration(cdg.PacketsToDuration(kf.Timestamp)), kf.Timestamp, kf.ClearColor)
	}
	fmt.Fprintf(md.Output, "%d keyframes in %d packets\n", len(kfs), sess.Len())

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, &kfs)
	}

	return nil
}

func formatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%02d:%02d.%03d", ms/60000, (ms/1000)%60, ms%1000)
}

func snapshot(md *modalflag.Modes) error {
	md.NewMode()

	at := md.AddDuration("at", 0, "position of the snapshot")
	output := md.AddString("o", "", "output filename (default is a unique name in the current directory)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := streamArg(md)
	if err != nil {
		return err
	}

	sess, ld, err := loadSession(filename)
	if err != nil {
		return err
	}

	if _, err := sess.SeekToMillis(int(at.Milliseconds())); err != nil {
		return err
	}

	fn := *output
	if fn == "" {
		fn = fmt.Sprintf("%s.png", paths.UniqueFilename("snapshot", ld.ShortName()))
	}

	if err := render.SavePNG(sess.State(), fn); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "snapshot at %s saved to %s\n", formatDuration(*at), fn)

	return nil
}

type yesReader struct{}

func (*yesReader) Read(p []byte) (int, error) {
	return copy(p, "y\n"), io.EOF
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()
		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")

		md.AdditionalHelp("list the keys of the entries to run. FAILS selects the entries that failed last time")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		n, err := regression.RegressRun(md.Output, *verbose, md.RemainingArgs())
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%d regression tests did not succeed", n)
		}

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

		return regression.RegressList(md.Output)

	case "DELETE":
		md.NewMode()
		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			var confirmation io.Reader = os.Stdin
			if *answerYes {
				confirmation = &yesReader{}
			}
			return regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
		default:
			return fmt.Errorf("only one entry can be deleted at at time")
		}

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	notes := md.AddString("notes", "", "additional annotation for the database")
	checkpoints := md.AddString("checkpoints", "", "comma separated list of positions in milliseconds")

	md.AdditionalHelp("if no checkpoints are specified then checkpoints are spread evenly over the stream")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := streamArg(md)
	if err != nil {
		return err
	}

	var cps []int
	if *checkpoints != "" {
		for _, s := range strings.Split(*checkpoints, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("invalid checkpoint (%s)", s)
			}
			cps = append(cps, v)
		}
	}

	ent := regression.NewEntry(filename, cps...)
	ent.Notes = *notes

	return regression.RegressAdd(md.Output, ent)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	seeks := md.AddInt("seeks", 10000, "number of random seeks")
	seed := md.AddUint64("seed", 1, "seed for the random positions")
	profile := md.AddString("profile", "none", "run with profiling: cpu, mem, trace, all (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	filename, err := streamArg(md)
	if err != nil {
		return err
	}

	sess, _, err := loadSession(filename)
	if err != nil {
		return err
	}
	sess.SetQuiet(true)

	fmt.Fprintf(md.Output, "%d packets, %d keyframes\n", sess.Len(), len(sess.Keyframes()))

	_, err = performance.Check(md.Output, prf, sess, *seeks, *seed)
	return err
}
