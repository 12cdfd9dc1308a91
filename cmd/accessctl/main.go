package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	bitmask "github.com/imdeaddev/bitmask-go"
)

// Permission is the demo's flag enumeration. AllFlags registers it and
// fixes the universe the complement is taken against.
type Permission uint16

const (
	PermRead Permission = 1 << iota
	PermWrite
	PermDelete
	PermShare
	PermAdmin
)

func (Permission) AllFlags() Permission {
	return bitmask.Universe(PermRead, PermWrite, PermDelete, PermShare, PermAdmin)
}

var permissionNames = map[string]Permission{
	"read":   PermRead,
	"write":  PermWrite,
	"delete": PermDelete,
	"share":  PermShare,
	"admin":  PermAdmin,
}

var permissionOrder = []string{"read", "write", "delete", "share", "admin"}

// Policy maps role names to the permissions the role grants.
type Policy struct {
	Roles map[string][]string `yaml:"roles"`
}

func main() {
	if len(os.Args) != 4 {
		usage()
		os.Exit(2)
	}

	granted, err := loadRole(os.Args[1], os.Args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	requested, err := parsePermissions(os.Args[3])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if granted.HasSet(requested) {
		fmt.Println("allowed")
		return
	}

	missing := requested.Intersect(granted.Not())
	fmt.Printf("denied (missing %s)\n", names(missing))
	os.Exit(1)
}

func loadRole(path, role string) (bitmask.Set[Permission], error) {
	var granted bitmask.Set[Permission]

	data, err := os.ReadFile(path)
	if err != nil {
		return granted, err
	}

	var policy Policy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return granted, fmt.Errorf("parsing %s: %w", path, err)
	}

	perms, ok := policy.Roles[role]
	if !ok {
		return granted, fmt.Errorf("role %q is not in the policy", role)
	}
	for _, name := range perms {
		perm, ok := permissionNames[strings.ToLower(name)]
		if !ok {
			return granted, fmt.Errorf("role %q grants unknown permission %q", role, name)
		}
		granted.Set(perm)
	}
	return granted, nil
}

func parsePermissions(list string) (bitmask.Set[Permission], error) {
	var requested bitmask.Set[Permission]

	for _, name := range strings.Split(list, ",") {
		perm, ok := permissionNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return requested, fmt.Errorf("unknown permission %q", name)
		}
		requested.Set(perm)
	}
	return requested, nil
}

func names(set bitmask.Set[Permission]) string {
	parts := []string{}
	for _, name := range permissionOrder {
		if set.Has(permissionNames[name]) {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ",")
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: accessctl <policy.yml> <role> <permission>[,<permission>...]")
	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintf(os.Stderr, "permissions: %s\n", strings.Join(permissionOrder, ", "))
	}
}
