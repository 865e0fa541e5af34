package cmd

import (
	"flag"

	"github.com/etnz/wealth/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of wcs.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"profile": predict.Files("*.json"),
			"config":  predict.Files("*.toml"),
			"fx":      predict.Something,
			"months":  predict.Something,
			"start":   predict.Something,
			"sample":  predict.Nothing,
			"raw":     predict.Nothing,
			"v":       predict.Nothing,
		},
	}
	for _, e := range commands {
		fs := flag.NewFlagSet(e.cmd.Name(), flag.ContinueOnError)
		e.cmd.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predict.Something
		})
		root.Sub[e.cmd.Name()] = sub
	}

	root.Sub["stocks"].Flags["by"] = predict.Set{"integrated", "broker", "sector"}
	root.Sub["realestate"].Flags["add"] = predict.Nothing
	root.Sub["realestate"].Flags["print"] = predict.Nothing
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	return root
}
