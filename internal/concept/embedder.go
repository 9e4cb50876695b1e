package concept

import (
	"context"
	"math"
	"math/rand"

	chromem "github.com/philippgille/chromem-go"
)

// termEmbedder produces a deterministic unit vector from a term's canonical
// string, seeded by the string's content, so equal terms always embed to
// the same point and structurally similar terms land near each other by
// shared-substring chance. There is no natural-language description to
// embed for a Narsese term the way teacher's Voyage-backed
// internal/embeddings.Embedder embeds free text, so this plays the same
// role without an external API dependency. Grounded directly on teacher's
// internal/embeddings/mock_embedder.go MockEmbedder.Embed.
type termEmbedder struct {
	dimension int
}

func (e termEmbedder) embed(text string) []float32 {
	embedding := make([]float32, e.dimension)

	var seed int64
	for _, r := range text {
		seed = seed*31 + int64(r)
	}
	rng := rand.New(rand.NewSource(seed))

	var sumSquares float64
	for i := range embedding {
		embedding[i] = float32(rng.NormFloat64())
		sumSquares += float64(embedding[i] * embedding[i])
	}
	if sumSquares > 0 {
		magnitude := float32(math.Sqrt(sumSquares))
		for i := range embedding {
			embedding[i] /= magnitude
		}
	}
	return embedding
}

func (e termEmbedder) embedFunc() chromem.EmbeddingFunc {
	return func(_ context.Context, text string) ([]float32, error) {
		return e.embed(text), nil
	}
}
