// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log repository for gopher8. There is a single
// central log that is accessed through the package level functions Log() and
// Logf(). Additional, independent logs can be created with NewLogger().
//
// Logging requests are gated by an implementation of the Permission interface.
// The Allow value can be used when a log entry should always be made.
//
// Repeated entries (same tag, same detail) are collapsed into a single entry
// with a repeat count.
package logger
