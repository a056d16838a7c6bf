// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about a run
type UserLogger struct {
	log       zerolog.Logger // for debug/error logging
	formatter FileFormatter  // for summary text
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log:       *zerolog.Ctx(ctx),
		formatter: NewDefaultFileFormatter(),
	}
}

// 📝 Preamble announces how many files were discovered
func (u *UserLogger) Preamble(total int) {
	msg := fmt.Sprintf("Found %d files to process...", total)
	pterm.Info.WithPrefix(pterm.Prefix{Text: "🔍"}).Println(msg)
	u.log.Info().Int("files", total).Msg(msg) // Also log to zerolog for debugging
}

// 📊 Summary reports the outcome of a run
func (u *UserLogger) Summary(report Report) {
	msg := u.formatter.FormatSummary(report)

	switch {
	case report.Failed > 0:
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(msg)
		pterm.Warning.Printfln("%d files skipped due to errors", report.Failed)
		u.log.Warn().Int("failed", report.Failed).Msg(msg)
	case report.Pending > 0:
		pterm.Info.WithPrefix(pterm.Prefix{Text: "📝"}).Println(msg)
		u.log.Info().Int("pending", report.Pending).Msg(msg)
	default:
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
		u.log.Info().Int("rewritten", report.Rewritten).Msg(msg)
	}
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
	} else {
		if err != nil {
			pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
			pterm.Error.Println(err)
			u.log.Error().Err(err).Msg(description)
		} else {
			pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
			u.log.Warn().Msg(description)
		}
	}
}
