package game

import (
	"fmt"

	"go_5_memory_game/internal/model"
)

// CreateRound draws the correct answer by priority, adds up to three distractors and shuffles the options.
// Pools with fewer than OptionsPerRound words produce rounds with fewer options.
func (g *Generator) CreateRound(pool *model.WordPool, roundType model.RoundType) (*model.Round, error) {
	if pool == nil || pool.Len() == 0 {
		return nil, model.ErrEmptyPool
	}
	if !roundType.Valid() {
		return nil, fmt.Errorf("%w: unknown round type %q", model.ErrInvalidInput, roundType)
	}

	correct := g.selectWeighted(pool.Words())
	distractors := g.selectDistractors(pool.Words(), correct, OptionsPerRound-1)

	options := make([]model.Word, 0, len(distractors)+1)
	options = append(options, *correct)
	options = append(options, distractors...)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &model.Round{
		Type:          roundType,
		CorrectAnswer: *correct,
		Options:       options,
	}, nil
}

// selectWeighted walks the words in order and returns the first one whose cumulative
// priority reaches the drawn value. words must not be empty.
func (g *Generator) selectWeighted(words []*model.Word) *model.Word {
	total := 0.0
	for _, w := range words {
		total += Priority(*w)
	}

	r := g.rng.Float64() * total
	cumulative := 0.0
	for _, w := range words {
		cumulative += Priority(*w)
		if cumulative >= r {
			return w
		}
	}
	// rounding left r above the final sum
	return words[len(words)-1]
}

// selectDistractors picks up to n words other than exclude, uniformly and without replacement.
func (g *Generator) selectDistractors(words []*model.Word, exclude *model.Word, n int) []model.Word {
	candidates := make([]model.Word, 0, len(words))
	for _, w := range words {
		if w.Label != exclude.Label {
			candidates = append(candidates, *w)
		}
	}
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}
