package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pokevault/pokedex-service/internal/models"
	"github.com/pokevault/pokedex-service/internal/serviceerrors"
)

const demoPokemonID = 25 // Pikachu

// Recommendations asks the LLM for team suggestions based on the user's
// collection. An empty collection short-circuits without calling the provider.
func (s *Service) Recommendations(ctx context.Context, userID int64) (*models.RecommendationsResult, error) {
	collection, err := s.store.ListItemsByUser(ctx, userID)
	if err != nil {
		return nil, serviceerrors.NewInternal(err)
	}
	if len(collection) == 0 {
		return &models.RecommendationsResult{
			Success: false,
			Message: "Your collection is empty",
		}, nil
	}

	recommendations, err := s.ai.Complete(ctx, recommendationsPrompt(collection))
	if err != nil {
		return nil, serviceerrors.NewInternal(err)
	}

	return &models.RecommendationsResult{
		Success:         true,
		Recommendations: recommendations,
		TotalPokemon:    len(collection),
	}, nil
}

// AnalyzeCollection asks the LLM for a strengths/weaknesses breakdown of the
// user's collection.
func (s *Service) AnalyzeCollection(ctx context.Context, userID int64) (*models.AnalysisResult, error) {
	collection, err := s.store.ListItemsByUser(ctx, userID)
	if err != nil {
		return nil, serviceerrors.NewInternal(err)
	}
	if len(collection) == 0 {
		return &models.AnalysisResult{
			Success: false,
			Message: "Your collection is empty",
		}, nil
	}

	analysis, err := s.ai.Complete(ctx, analysisPrompt(collection))
	if err != nil {
		return nil, serviceerrors.NewInternal(err)
	}

	return &models.AnalysisResult{
		Success:      true,
		Analysis:     analysis,
		TotalPokemon: len(collection),
	}, nil
}

// DemoFacts generates facts about a fixed demo Pokémon fetched from the
// catalog. Served without authentication.
func (s *Service) DemoFacts(ctx context.Context) (*models.FactsResult, error) {
	pokemon, err := s.catalog.Get(ctx, demoPokemonID)
	if err != nil {
		return nil, serviceerrors.NewInternal(err)
	}

	facts, err := s.ai.Complete(ctx, factsPrompt(pokemon))
	if err != nil {
		return nil, serviceerrors.NewInternal(err)
	}

	return &models.FactsResult{Success: true, Facts: facts}, nil
}

func recommendationsPrompt(collection []models.CollectionItem) string {
	names := make([]string, 0, len(collection))
	for _, item := range collection {
		names = append(names, item.Name)
	}

	var b strings.Builder
	b.WriteString("You are an expert Pokémon trainer. Analyze this collection and recommend EXACTLY 4 specific Pokémon that complement it:\n\n")
	fmt.Fprintf(&b, "Pokémon in the current collection: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(&b, "Total: %d Pokémon\n\n", len(collection))
	b.WriteString("For each of the 4 recommended Pokémon use this EXACT format (no numbering):\n\n")
	b.WriteString("**PokemonName**\n")
	b.WriteString("Explain how this Pokémon combines strategically with the ones ALREADY in the collection (mention specific names from the current team), which weaknesses it covers and what synergy it brings.\n\n")
	b.WriteString("(Blank line between each Pokémon)\n\n")
	b.WriteString("IMPORTANT: You must recommend EXACTLY 4 Pokémon. Be concise and direct, at most 3-4 lines per Pokémon. Mention specific names the user already owns.")
	return b.String()
}

func analysisPrompt(collection []models.CollectionItem) string {
	var b strings.Builder
	b.WriteString("You are an expert Pokémon analyst. Analyze this collection and provide detailed insights:\n\nCollection:\n")
	for _, item := range collection {
		fmt.Fprintf(&b, "- %s (catalog id %d)", item.Name, item.PokemonID)
		if item.Note != nil && *item.Note != "" {
			fmt.Fprintf(&b, " (trainer note: %s)", *item.Note)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nProvide:\n")
	b.WriteString("1. Strengths of the collection\n")
	b.WriteString("2. Weaknesses or areas to improve\n")
	b.WriteString("3. Synergies between Pokémon\n")
	b.WriteString("4. Strategic suggestions")
	return b.String()
}

func factsPrompt(pokemon *models.Pokemon) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate interesting trivia and a creative description for %s:\n\n", pokemon.Name)
	b.WriteString("Information:\n")
	fmt.Fprintf(&b, "- Types: %s\n", strings.Join(pokemon.Types, ", "))
	fmt.Fprintf(&b, "- Abilities: %s\n", strings.Join(pokemon.Abilities, ", "))
	fmt.Fprintf(&b, "- HP: %d, Attack: %d, Defense: %d\n\n",
		pokemon.Stats.HP, pokemon.Stats.Attack, pokemon.Stats.Defense)
	b.WriteString("Provide:\n")
	b.WriteString("1. 3 interesting facts\n")
	b.WriteString("2. A creative description of its battle style\n")
	b.WriteString("3. A fun fact about its design or inspiration")
	return b.String()
}
