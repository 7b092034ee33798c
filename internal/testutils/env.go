package testutils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupEnv unsets every variable in clear, then sets envVars, for the
// duration of the test. Original values are restored by t.Setenv.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    testutils.SetupEnv(t, []string{"GEMINI_API_KEY"}, map[string]string{
//	        "STUDYCARDS_SERVER_PORT": "9090",
//	    })
//	    // run code that reads the environment
//	}
func SetupEnv(t *testing.T, clear []string, envVars map[string]string) {
	t.Helper()

	for _, name := range clear {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}
