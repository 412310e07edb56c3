// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package cmd implements the axrun command line interface.
package cmd
