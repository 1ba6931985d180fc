package router

import (
	_ "embed"
)

//go:embed data/sample_network.yaml
var sampleNetwork []byte

// SampleNetwork returns the built-in Washington DC area network.
func SampleNetwork() *NetworkDoc {
	doc, err := DecodeNetwork(sampleNetwork)
	if err != nil {
		log.Panicf("invalid embedded network: %v", err)
	}
	return doc
}
