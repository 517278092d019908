package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/heat"
	"github.com/hammamikhairi/stovetop/internal/recipe"
	"github.com/hammamikhairi/stovetop/internal/storage"
)

const stdinName = "Pasted recipe"

// readRecipeText returns the recipe name and raw text from --sample, a
// file argument or stdin, in that order.
func readRecipeText(cmd *cobra.Command, args []string) (string, string, error) {
	if sampleKey != "" {
		s, ok := recipe.LookupSample(sampleKey)
		if !ok {
			return "", "", fmt.Errorf("unknown sample %q (have: %s)", sampleKey, strings.Join(recipe.SampleKeys(), ", "))
		}
		return s.Name, s.Text, nil
	}

	if len(args) == 0 || args[0] == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return stdinName, string(raw), nil
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", err
	}
	return nameFromPath(args[0]), string(raw), nil
}

// nameFromPath turns "recipes/chicken_curry.txt" into "Chicken Curry".
func nameFromPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	words := strings.Fields(base)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// importRecipe reads and imports the recipe into a fresh in-memory store.
func importRecipe(ctx context.Context, cmd *cobra.Command, args []string) (*domain.Recipe, *storage.MemoryStore, error) {
	name, text, err := readRecipeText(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	store := storage.NewMemoryStore(log)
	r, err := recipe.NewImporter(store, log).Import(ctx, name, text)
	if err != nil {
		return nil, nil, fmt.Errorf("importing %q: %w", name, err)
	}
	return r, store, nil
}

// parseStepList turns "2,3" (1-based step numbers) into step orders.
// "all" selects every step worth cooking on high heat.
func parseStepList(value string, steps []domain.Step) ([]int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if strings.EqualFold(value, "all") {
		var orders []int
		for _, c := range heat.OptimizableSteps(steps) {
			orders = append(orders, c.Step.Order)
		}
		return orders, nil
	}

	seen := map[int]bool{}
	var orders []int
	for _, part := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid step %q", part)
		}
		if n < 1 || n > len(steps) {
			return nil, fmt.Errorf("step %d: %w", n, domain.ErrIndexOutOfRange)
		}
		if !seen[n-1] {
			seen[n-1] = true
			orders = append(orders, n-1)
		}
	}
	sort.Ints(orders)
	return orders, nil
}

func parseMultiplier(value string) (float64, error) {
	m, ok := recipe.ParseFraction(value)
	if !ok || m <= 0 {
		return 0, fmt.Errorf("invalid multiplier %q (try 2, 1.5 or 1/2)", value)
	}
	return m, nil
}
