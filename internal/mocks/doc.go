// Package mocks provides centralized mock implementations for testing.
//
// Each mock implements one interface of the application (generation.Generator,
// generation.ModelClient, extract.Extractor, auth.TokenService) with function
// fields that override behavior, default return values, and call tracking.
//
// Usage:
//
//	import "github.com/phrazzld/scry-studycards/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    client := &mocks.MockModelClient{
//	        Replies: map[string]mocks.ModelReply{
//	            "gemini-pro": {Text: `[{"title":"A","content":"x","emoji":"🙂"}]`},
//	        },
//	    }
//
//	    // Models absent from Replies fail with a 404, so fallback can be exercised.
//	}
package mocks
