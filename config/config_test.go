/*
 * MLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import (
	"testing"
)

func TestConfig(t *testing.T) {

	if res := Str(PrettyPrintColumn); res != "80" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Int(PrettyPrintColumn); res != 80 {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Str(ConsoleHistoryFile); res != ".mlang_console_history" {
		t.Error("Unexpected result:", res)
		return
	}

	Config["testflag"] = true

	if res := Bool("testflag"); !res {
		t.Error("Unexpected result:", res)
		return
	}

	delete(Config, "testflag")
}
