// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InterpreterNotFoundId Id = iota + 1
	VenvUnavailableId
	ManifestNotFoundId
	ProvisionRequiredId
	BackendFailedId
	ConfigLoadFailedId
	AutostartUnsupportedId
	SystemPackagesFailedId
)

type MarkdownMsg string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id    Id          // ID used to lookup the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	interpreterNotFoundIssue = &Issue{
		id: InterpreterNotFoundId,
		mdMsg: `
# No Python interpreter found!

RipperFox needs a Python 3 interpreter, but none of the expected
candidates (python3, python) are on your PATH.

## Things you can try:
- Debian/Ubuntu:
~~~
$ sudo apt-get install python3 python3-venv
~~~

- Fedora:
~~~
$ sudo dnf install python3
~~~

- Arch:
~~~
$ sudo pacman -S python
~~~

- If Python is installed in a non-standard location, add it to PATH or
  set it in your config file:
~~~cue
interpreters: ["/opt/python/bin/python3"]
~~~`,
	}

	venvUnavailableIssue = &Issue{
		id: VenvUnavailableId,
		mdMsg: `
# Virtual environment support is missing!

Your Python interpreter cannot create virtual environments (the venv
module is unavailable). Provisioning needs it to build an isolated
dependency environment.

## Things you can try:
- Debian/Ubuntu ship venv separately:
~~~
$ sudo apt-get install python3-venv
~~~

- Verify the module manually:
~~~
$ python3 -m venv --help
~~~`,
	}

	manifestNotFoundIssue = &Issue{
		id: ManifestNotFoundId,
		mdMsg: `
# Dependency manifest not found!

Provisioning reads the package list from requirements.txt, but the file
does not exist at the expected location.

## Things you can try:
- Run 'rfxboot provision' from the RipperFox checkout directory
- Point the provisioner at the manifest explicitly:
~~~
$ rfxboot provision --manifest /path/to/requirements.txt
~~~

- Or set it permanently in your config file:
~~~cue
manifest: "/path/to/requirements.txt"
~~~

Nothing was created or modified on disk.`,
	}

	provisionRequiredIssue = &Issue{
		id: ProvisionRequiredId,
		mdMsg: `
# No usable interpreter to launch with!

Neither the provisioned environment nor a system Python interpreter
could be found.

## Things you can try:
- Provision the environment first:
~~~
$ rfxboot provision
~~~

- Check that the environment directory was not moved or deleted:
~~~
$ rfxboot doctor
~~~`,
	}

	backendFailedIssue = &Issue{
		id: BackendFailedId,
		mdMsg: `
# RipperFox exited with an error!

The backend process terminated with a non-zero status.

## Common causes:
- Missing Python dependencies (re-run 'rfxboot provision')
- Port already in use by another RipperFox instance
- Corrupted settings file

## Things you can try:
- Re-run with verbose output:
~~~
$ rfxboot --verbose launch
~~~

- Re-provision the environment:
~~~
$ rfxboot provision
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the rfxboot configuration file.

## Configuration file locations:
- Linux: ~/.config/ripperfox/config.cue
- macOS: ~/Library/Application Support/ripperfox/config.cue
- Windows: %APPDATA%\ripperfox\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ rfxboot config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
app_dir:     "/opt/ripperfox"
venv_dir:    "venv"
manifest:    "requirements.txt"
entry_point: "ripperfox_launcher.py"
~~~`,
	}

	autostartUnsupportedIssue = &Issue{
		id: AutostartUnsupportedId,
		mdMsg: `
# Autostart is not supported on this platform!

Desktop autostart entries (XDG .desktop files) are only managed on
Linux. On other platforms, configure your OS-native startup mechanism
to run:
~~~
$ rfxboot launch --detach
~~~`,
	}

	systemPackagesFailedIssue = &Issue{
		id: SystemPackagesFailedId,
		mdMsg: `
# System package installation failed!

The optional GUI toolkit package could not be installed through your
package manager.

## Things you can try:
- Re-run the failing install command manually to see the full output
- Make sure you can run sudo
- Skip the optional step entirely; the isolated environment still
  provides all Python dependencies:
~~~
$ rfxboot provision --no-system-packages
~~~`,
	}

	issues = map[Id]*Issue{
		interpreterNotFoundIssue.Id():  interpreterNotFoundIssue,
		venvUnavailableIssue.Id():      venvUnavailableIssue,
		manifestNotFoundIssue.Id():     manifestNotFoundIssue,
		provisionRequiredIssue.Id():    provisionRequiredIssue,
		backendFailedIssue.Id():        backendFailedIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		autostartUnsupportedIssue.Id(): autostartUnsupportedIssue,
		systemPackagesFailedIssue.Id(): systemPackagesFailedIssue,
	}
)

func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}
