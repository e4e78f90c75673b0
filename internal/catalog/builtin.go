package catalog

// #region builtin
// Builtin returns the sample catalog shipped with the inspector. Each call
// builds a fresh value; nothing here is shared process state.
func Builtin() *Catalog {
	c, err := New(builtinRecords()...)
	if err != nil {
		// The literal records below are fixed; a failure is a programming error.
		panic(err)
	}
	return c
}

func builtinRecords() []DomainRecord {
	return []DomainRecord{
		{
			Key:          "physics",
			Name:         "Experimental Physics (C7)",
			Source:       "ArXiv: hep-ex, nucl-ex, physics.atom-ph, physics.plasm-ph",
			Count:        17673,
			AvgPosterior: 0.85,
			Tier:         TierSteel,
			SampleNode: WisdomNode{
				CoreInsight: "The scattering length of ultracold atoms can be tuned via Feshbach resonances, enabling precise control of interaction strength.",
				Evidence: []string{
					"Measured scattering length variation of ±50% near resonance",
					"Temperature: 100 nK, magnetic field precision: 0.1 G",
				},
				Posterior: 0.92,
				Warmth:    WarmthMedium,
			},
		},
		{
			Key:          "neurips",
			Name:         "NeurIPS 2024 Blueprints",
			Source:       "NeurIPS 2024 Conference Papers",
			Count:        20000,
			AvgPosterior: 0.89,
			Tier:         TierSteel,
			SampleNode: WisdomNode{
				CoreInsight: "LoRA with rank r=8 and alpha=16 reduces trainable parameters by 98% while retaining 95%+ task performance on instruction-following benchmarks.",
				Evidence: []string{
					"Tested on Alpaca-52k, WizardLM, and custom instruction sets",
					"Memory reduction from 32GB to 8GB VRAM for 7B models",
				},
				Posterior: 0.95,
				Warmth:    WarmthHigh,
			},
		},
		{
			Key:          "finance",
			Name:         "Finance & Economics",
			Source:       "ArXiv: q-fin.*, econ.*",
			Count:        23000,
			AvgPosterior: 0.87,
			Tier:         TierSteel,
			SampleNode: WisdomNode{
				CoreInsight: "Mean-variance portfolio optimization with transaction costs shows diminishing returns below $100k portfolio size due to fixed cost dominance.",
				Evidence: []string{
					"Empirical analysis of 10,000 simulated portfolios",
					"Transaction cost threshold: 0.1% of trade value",
				},
				Posterior: 0.88,
				Warmth:    WarmthHigh,
			},
		},
		{
			Key:          "ethics",
			Name:         "Philosophy & Ethics",
			Source:       "Project Gutenberg: Marcus Aurelius, Epictetus, Kant, Mill",
			Count:        2000,
			AvgPosterior: 0.92,
			Tier:         TierDiamond,
			SampleNode: WisdomNode{
				CoreInsight: "True courage is not the absence of fear, but the judgment that something else is more important than fear.",
				Evidence: []string{
					"Derived from Stoic principle of rational evaluation",
					"Echoed in Aristotle's Nicomachean Ethics",
				},
				Posterior: 0.95,
				Warmth:    WarmthHigh,
			},
		},
		{
			Key:          "math",
			Name:         "Pure Mathematics",
			Source:       "ArXiv: math.*",
			Count:        2500,
			AvgPosterior: 0.78,
			Tier:         TierSilk,
			SampleNode: WisdomNode{
				CoreInsight: "For compact quantum groups G, the Peter-Weyl theorem guarantees decomposition into finite-dimensional irreducible representations.",
				Evidence: []string{
					"Proof relies on Haar measure existence",
					"Applies to SUq(2) and other quantum group families",
				},
				Posterior: 0.82,
				Warmth:    WarmthLow,
			},
		},
	}
}

// #endregion builtin
