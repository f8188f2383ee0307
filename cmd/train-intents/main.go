// Command train-intents rebuilds the persisted intent model from the
// labelled phrase file.
package main

import (
	"flag"
	"log"

	railbot "github.com/mumbailocal/railbot"
	"github.com/mumbailocal/railbot/config"
	"github.com/mumbailocal/railbot/intent"
)

func main() {
	phrases := flag.String("phrases", "", "phrase file (default from config)")
	out := flag.String("out", "", "model output path (default from config)")
	flag.Parse()

	railbot.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		panic(err)
	}

	phrasePath := *phrases
	if phrasePath == "" {
		phrasePath = config.Config.Data.IntentPhrasesPath
	}
	modelPath := *out
	if modelPath == "" {
		modelPath = config.Config.Data.IntentModelPath
	}

	labelled, err := intent.LoadPhrases(phrasePath)
	if err != nil {
		log.Fatalf("loading phrases: %v", err)
	}
	n := 0
	for _, examples := range labelled {
		n += len(examples)
	}

	nb := intent.Train(labelled)
	if err := intent.SaveModel(nb, modelPath); err != nil {
		log.Fatalf("saving model: %v", err)
	}
	log.Printf("trained on %d phrases across %d intents, model written to %s", n, len(labelled), modelPath)
}
