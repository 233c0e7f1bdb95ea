// Package neat implements NeuroEvolution of Augmenting Topologies (NEAT), a
// genetic algorithm that evolves both the weights and the structure of small
// feed-forward neural networks.
//
// Genes are aligned across genomes by innovation number. Offspring quotas come
// from fitness shared within species, species that stop improving are culled,
// and elites survive unchanged. All randomness flows through a caller-supplied
// *rand.Rand, so a run is reproducible from its seed.
//
// The runnable network lives in the nn subpackage.
//
// Basic usage:
//
//	config, err := neat.LoadConfig("configs/xor.ini")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	innovation := 0
//	seed := neat.Minimal(3, 1, &innovation)
//
//	rng := rand.New(rand.NewSource(42))
//	pop, err := neat.NewPopulation(seed, config, rng)
//	if err != nil {
//		log.Fatalf("Error creating population: %v", err)
//	}
//
//	for i := 0; i < 100; i++ {
//		pop.Evaluate(func(_ int, g neat.Genome) float64 {
//			return score(nn.New(g))
//		})
//		if pop.BestFitness() > 3.9 {
//			fmt.Println("Solution found!")
//			break
//		}
//		pop.AdvanceGeneration()
//	}
package neat
