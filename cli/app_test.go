package cli

import (
	"bytes"
	"strings"
	"testing"

	"go.viam.com/test"
)

const testConfig = "../camera/testdata/camera.json"

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := NewApp(&out, &errOut).Run(append([]string{"pinhole"}, args...))
	return out.String(), errOut.String(), err
}

func TestProjectAndUnproject(t *testing.T) {
	out, _, err := runApp(t, "--config", testConfig, "project", "0", "0", "2")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldEqual, "319.5 239.5 2\n")

	out, _, err = runApp(t, "--config", testConfig, "unproject", "319.5", "239.5", "2")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldEqual, "0 0 2\n")
}

func TestOnImage(t *testing.T) {
	out, _, err := runApp(t, "--config", testConfig, "on-image", "639.5", "0")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldEqual, "true\n")

	out, _, err = runApp(t, "--config", testConfig, "on-image", "640", "0")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldEqual, "false\n")
}

func TestFrustum(t *testing.T) {
	out, _, err := runApp(t, "--config", testConfig, "frustum", "--translation", "1,2,3")
	test.That(t, err, test.ShouldBeNil)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	test.That(t, len(lines), test.ShouldEqual, 9)
	test.That(t, lines[8], test.ShouldStartWith, "bounds: ")

	_, _, err = runApp(t, "--config", testConfig, "frustum", "--rotation", "1,2")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestLogLevel(t *testing.T) {
	_, errOut, err := runApp(t, "--config", testConfig, "--log-level", "debug", "on-image", "1", "1")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, errOut, test.ShouldContainSubstring, "pinhole camera configured")

	_, errOut, err = runApp(t, "--config", testConfig, "on-image", "1", "1")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, errOut, test.ShouldBeEmpty)

	_, _, err = runApp(t, "--config", testConfig, "--log-level", "loud", "on-image", "1", "1")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "unknown log level")
}

func TestBadArguments(t *testing.T) {
	_, _, err := runApp(t, "--config", testConfig, "project", "1", "2")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "expected 3 arguments")

	_, _, err = runApp(t, "--config", testConfig, "project", "1", "two", "3")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "argument 2")

	_, _, err = runApp(t, "--config", "does-not-exist.json", "project", "1", "2", "3")
	test.That(t, err, test.ShouldNotBeNil)
}
