package pkgmanager

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFromLockfiles(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  Name
	}{
		{"pnpm", []string{"pnpm-lock.yaml"}, PNPM},
		{"yarn", []string{"yarn.lock"}, Yarn},
		{"bun binary lock", []string{"bun.lockb"}, Bun},
		{"bun text lock", []string{"bun.lock"}, Bun},
		{"npm", []string{"package-lock.json"}, NPM},
		{"shrinkwrap", []string{"npm-shrinkwrap.json"}, NPM},
		{"pnpm wins over npm", []string{"package-lock.json", "pnpm-lock.yaml"}, PNPM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				touch(t, filepath.Join(dir, f), "")
			}
			got, ok := FromLockfiles(dir)
			if !ok {
				t.Fatal("expected detection")
			}
			if got != tt.want {
				t.Errorf("FromLockfiles() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromLockfiles_PackageManagerField(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "package.json"), `{"packageManager":"yarn@4.1.0"}`)
	touch(t, filepath.Join(dir, "package-lock.json"), "")

	got, ok := FromLockfiles(dir)
	if !ok || got != Yarn {
		t.Errorf("FromLockfiles() = %q, %v; want yarn", got, ok)
	}
}

func TestFromLockfiles_WalksUpToWorkspaceRoot(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "pnpm-lock.yaml"), "")
	pkgDir := filepath.Join(root, "packages", "web")
	touch(t, filepath.Join(pkgDir, "package.json"), `{"name":"web"}`)

	got, ok := FromLockfiles(pkgDir)
	if !ok || got != PNPM {
		t.Errorf("FromLockfiles() = %q, %v; want pnpm", got, ok)
	}
}

func TestFromUserAgent(t *testing.T) {
	tests := []struct {
		ua   string
		want Name
	}{
		{"pnpm/9.1.0 npm/? node/v20.11.0 darwin arm64", PNPM},
		{"yarn/1.22.19 npm/? node/v18.0.0 linux x64", Yarn},
		{"npm/10.2.4 node/v20.11.0 linux x64 workspaces/false", NPM},
		{"bun/1.1.0 npm/? node/v21.0.0 linux x64", Bun},
		{"", NPM},
		{"deno/1.40", NPM},
	}
	for _, tt := range tests {
		if got := FromUserAgent(tt.ua); got != tt.want {
			t.Errorf("FromUserAgent(%q) = %q, want %q", tt.ua, got, tt.want)
		}
	}
}

func TestDetectFallsBackToUserAgent(t *testing.T) {
	dir := t.TempDir()
	if got := Detect(dir, "yarn/1.22.19"); got != Yarn {
		t.Errorf("Detect() = %q, want yarn", got)
	}
	if got := Detect(dir, ""); got != NPM {
		t.Errorf("Detect() = %q, want npm", got)
	}
}

func TestParse(t *testing.T) {
	if n, ok := Parse(" PNPM "); !ok || n != PNPM {
		t.Errorf("Parse(PNPM) = %q, %v", n, ok)
	}
	if _, ok := Parse("cargo"); ok {
		t.Error("Parse(cargo) should fail")
	}
}

func TestInstallArgs(t *testing.T) {
	pkgs := []string{"typescript@>=5.0.0", "tsconfig-presets@^2.3.0"}
	tests := []struct {
		name     Name
		wantBin  string
		wantArgs []string
	}{
		{PNPM, "pnpm", []string{"add", "-D"}},
		{Yarn, "yarn", []string{"add", "-D"}},
		{Bun, "bun", []string{"add", "-d"}},
		{NPM, "npm", []string{"install", "-D"}},
		{Name("deno"), "npm", []string{"install", "-D"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			bin, args := InstallArgs(tt.name, pkgs)
			if bin != tt.wantBin {
				t.Errorf("bin = %q, want %q", bin, tt.wantBin)
			}
			want := append(tt.wantArgs, pkgs...)
			if !reflect.DeepEqual(args, want) {
				t.Errorf("args = %v, want %v", args, want)
			}
		})
	}
}
