// Package classifier decides whether an incoming HTTP request should be
// treated as coming from a mobile or a desktop client.
//
// The decision is made from a small set of request signals: the User-Agent
// header plus a few optional hint headers (Screen-Width, Screen-Height,
// Touch-Support and Device-Memory). Rules are evaluated in a fixed order and
// the first one that matches wins:
//
//  1. the User-Agent contains one of the configured mobile patterns
//  2. both screen dimensions are present and either is <= 1024
//  3. touch is explicitly supported and device memory is <= 4 GiB
//  4. otherwise the request is classified as desktop
//
// Missing or malformed hint headers never cause an error; the rule that needs
// them is simply skipped.
//
// # Usage
//
//	c := classifier.New() // DefaultPatterns
//
//	res := c.Explain(classifier.SignalsFromRequest(r))
//	if res.Classification == classifier.Mobile {
//	    // ...
//	}
//
// A custom, ordered pattern list can be injected at construction time, for
// example loaded from a YAML file:
//
//	patterns, err := classifier.LoadPatterns("patterns.yaml")
//	if err != nil {
//	    return err
//	}
//	c := classifier.New(patterns...)
//
// The Classifier is immutable after construction and safe for concurrent use.
//
// # Middleware
//
// Middleware classifies every request and stores the Result in the request
// context, where it can be read back with FromContext. LoggerExtractor exposes
// the classification to the logger package.
package classifier
