package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/stovetop/internal/config"
	"github.com/hammamikhairi/stovetop/internal/conversation"
	"github.com/hammamikhairi/stovetop/internal/display"
	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/engine"
	"github.com/hammamikhairi/stovetop/internal/gpt"
	"github.com/hammamikhairi/stovetop/internal/logger"
	"github.com/hammamikhairi/stovetop/internal/speech"
	"github.com/hammamikhairi/stovetop/internal/timer"
)

var (
	cookOptimize string
	cookNoVoice  bool
	cookListen   bool
	cookNoAI     bool
)

var cookCmd = &cobra.Command{
	Use:   "cook [file]",
	Short: "Cook a recipe with a guided, timed walkthrough",
	Long: "Imports the recipe and reads it out one step at a time. Timers start once a step\n" +
		"has been announced. Type or say next, back, pause, high heat, add a minute, quit.",
	Args: cobra.MaximumNArgs(1),
	RunE: runCook,
}

func init() {
	f := cookCmd.Flags()
	f.StringVar(&cookOptimize, "optimize", "", "steps to cook on high heat, e.g. 2,3 or all")
	f.BoolVar(&cookNoVoice, "no-voice", false, "print nothing aloud; timers start right away")
	f.BoolVar(&cookListen, "listen", false, "accept spoken commands through local Whisper")
	f.BoolVar(&cookNoAI, "no-ai", false, "never send unrecognised commands to the chat model")
	rootCmd.AddCommand(cookCmd)
}

// cookSession lets the supervisor be built before the guide it drives.
type cookSession struct {
	*engine.Guide
}

func runCook(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	r, store, err := importRecipe(ctx, cmd, args)
	if err != nil {
		return err
	}
	optimized, err := parseStepList(cookOptimize, r.SortedSteps())
	if err != nil {
		return fmt.Errorf("--optimize: %w", err)
	}
	if cookNoVoice {
		cfg.Voice.Enabled = false
	}

	ui := display.NewUI()
	notifier := conversation.NewCLINotifier(log, ui.Printf)
	speaker, mouth := newSpeaker(cfg, notifier, log)

	sess := &cookSession{}
	sup := timer.New(sess, log,
		timer.WithSpeechEvents(speaker.Events()),
		timer.WithObserver(func() { ui.Show(sess.View()) }),
	)

	eng := engine.New(store, log)
	g, err := eng.StartSession(ctx, r.ID, speaker, sup.Scheduler(), optimized,
		engine.WithVoice(cfg.SpeechMode() != speech.ModeOff),
		engine.WithAutoAdvance(cfg.Cook.AutoAdvance),
		engine.WithAnnounceDelay(cfg.Cook.AnnounceDelayDuration()),
	)
	if err != nil {
		return err
	}
	sess.Guide = g
	ui.Show(g.View())

	var voiceCh <-chan string
	if cookListen {
		ear, err := newEar(cfg, mouth, ui)
		if err != nil {
			return err
		}
		go ear.Run(ctx)
		voiceCh = ear.C()
	}

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render(fmt.Sprintf("  Cooking %s: %d steps. Type 'help' for commands, 'quit' to stop.", r.Name, len(r.Steps))))
	if cookListen {
		fmt.Println(display.BannerStyle.Render("  Voice mode on: say \"hey chef\" before a command."))
	}
	fmt.Println()

	// Spoken and printed voices already read the help line out.
	printHelp := cfg.SpeechMode() == speech.ModeOff
	go readCommands(ctx, ui, sup, newParser(cfg), voiceCh, printHelp)

	sup.Start(ctx)
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	sup.Stop()
	<-sup.Done()
	speaker.Stop()

	if !g.Completed() {
		fmt.Fprintln(cmd.OutOrStdout(), "Stopped before the last step; nothing recorded.")
		return nil
	}
	return recordSession(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), eng, r.ID)
}

// readCommands forwards typed and spoken lines to the session loop until
// the session finishes.
func readCommands(ctx context.Context, ui *display.UI, sup *timer.Supervisor, parser domain.IntentParser, voiceCh <-chan string, printHelp bool) {
	ui.WaitReady()
	defer ui.Quit()

	for {
		var line string
		select {
		case <-ctx.Done():
			return
		case <-sup.Done():
			return
		case line = <-ui.InputChan():
		case line = <-voiceCh:
			ui.PrintVoice(line)
		}

		intent, err := parser.Parse(ctx, line)
		if err != nil {
			log.Error("parsing input: %v", err)
			continue
		}
		if printHelp && intent.Type == domain.IntentHelp {
			ui.PrintHint(speech.LineHelp())
		}
		if err := sup.Submit(ctx, *intent); err != nil {
			if !errors.Is(err, timer.ErrStopped) {
				log.Error("submitting %s: %v", intent.Type, err)
			}
			return
		}
	}
}

// newParser returns the keyword parser, backed by the chat model when one
// is configured.
func newParser(c *config.Config) domain.IntentParser {
	keywords := conversation.NewKeywordParser(log)
	if cookNoAI || !c.AI.Enabled() {
		return keywords
	}
	log.Info("AI fallback enabled")
	client := gpt.NewClient(c.AI.Endpoint, c.AI.Key, log, gpt.WithModel(c.AI.Model))
	return gpt.NewClassifier(keywords, client, log)
}

// newSpeaker picks the voice output. Azure needs a working audio device;
// without one the session falls back to a printed transcript.
func newSpeaker(c *config.Config, notifier domain.Notifier, log *logger.Logger) (domain.Speaker, *speech.Mouth) {
	switch c.SpeechMode() {
	case speech.ModeOff:
		return speech.NewNoOp(log), nil
	case speech.ModeAzure:
		player, err := speech.NewPlayer(log)
		if err != nil {
			log.Error("audio player init failed, using text: %v", err)
			break
		}
		tts := speech.NewAzureTTS(c.Azure.Key, c.Azure.Region, log, speech.WithVoice(c.Azure.Voice))
		m := speech.NewMouth(tts, player, log, speech.WithCacheDir(c.Voice.CacheDir))
		log.Info("TTS enabled (voice=%s, region=%s)", tts.Voice(), c.Azure.Region)
		return m, m
	}
	return speech.NewTranscript(notifier, log), nil
}

func newEar(c *config.Config, mouth *speech.Mouth, ui *display.UI) (*speech.Ear, error) {
	if _, err := os.Stat(c.Whisper.Model); err != nil {
		return nil, fmt.Errorf("whisper model not found at %s: %w", c.Whisper.Model, err)
	}
	opts := []speech.EarOption{speech.WithAcknowledge(ui.PrintHint)}
	if mouth != nil {
		opts = append(opts, speech.WithEchoControl(mouth))
	}
	log.Info("voice input enabled (bin=%s, model=%s)", c.Whisper.Bin, c.Whisper.Model)
	return speech.NewEar(c.Whisper.Bin, c.Whisper.Model, log, opts...), nil
}

// recordSession asks for a rating and stores the finished cook. An empty
// answer skips the rating; the session is then offered for rating later.
func recordSession(ctx context.Context, in io.Reader, out io.Writer, eng *engine.Engine, recipeID string) error {
	sc := bufio.NewScanner(in)
	ask := func(prompt string) string {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			return ""
		}
		return strings.TrimSpace(sc.Text())
	}

	rating := 0
	for {
		answer := ask("How did it go? Rate 1-5 (enter to skip): ")
		if answer == "" {
			break
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= 5 {
			rating = n
			break
		}
		fmt.Fprintln(out, "Please enter a number from 1 to 5.")
	}

	notes := ""
	if rating > 0 {
		notes = ask("Any notes? (enter to skip): ")
	}

	s, err := eng.Finish(ctx, recipeID, rating, notes)
	if err != nil {
		return err
	}
	if !s.Rated() {
		fmt.Fprintln(out, "Saved. You can rate this cook later.")
		return nil
	}
	fmt.Fprintf(out, "Saved: %d/5.\n", s.Rating)
	for _, tip := range s.Suggestions {
		fmt.Fprintf(out, "  Next time: %s\n", tip)
	}
	return nil
}
