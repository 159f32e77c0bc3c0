// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles a configuration tree from the tool's settings.
//
// [App.Build] restores the environment snapshot when one is enabled and
// present. Otherwise it loads the source directory through the loader and
// dumps a fresh snapshot for the next run.
package app
