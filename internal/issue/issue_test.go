// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestCatalogCoversAllIds(t *testing.T) {
	t.Parallel()

	ids := []Id{
		InterpreterNotFoundId,
		VenvUnavailableId,
		ManifestNotFoundId,
		ProvisionRequiredId,
		BackendFailedId,
		ConfigLoadFailedId,
		AutostartUnsupportedId,
		SystemPackagesFailedId,
	}

	for _, id := range ids {
		if Get(id) == nil {
			t.Errorf("issue catalog has no entry for id %d", id)
		}
	}

	if got, want := len(Values()), len(ids); got != want {
		t.Errorf("Values() returned %d issues, want %d", got, want)
	}
}

func TestValuesSortedById(t *testing.T) {
	t.Parallel()

	vals := Values()
	for i := 1; i < len(vals); i++ {
		if vals[i-1].Id() >= vals[i].Id() {
			t.Fatalf("Values() not sorted: id %d before id %d", vals[i-1].Id(), vals[i].Id())
		}
	}
}

func TestRenderUsesCatalogMarkdown(t *testing.T) {
	t.Parallel()

	// Swap the renderer so the test does not depend on glamour's styling.
	orig := render
	defer func() { render = orig }()

	var captured string
	render = func(in string, _ string) (string, error) {
		captured = in
		return in, nil
	}

	out, err := Get(ManifestNotFoundId).Render("dark")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(out, "requirements.txt") {
		t.Errorf("rendered output %q does not mention the manifest", out)
	}
	if captured != string(Get(ManifestNotFoundId).MarkdownMsg()) {
		t.Error("Render() did not pass the catalog markdown to the renderer")
	}
}
