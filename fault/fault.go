// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type FundsError GenericError
type InvalidError GenericError
type MintError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountExists        = ExistsError("account already exists")
	ErrAccountNotFound      = NotFoundError("account not found")
	ErrAuthorityExists      = ExistsError("authority already initialised")
	ErrAuthorityNotFound    = NotFoundError("authority not initialised")
	ErrBalanceOverflow      = InvalidError("balance overflow")
	ErrCannotDecodeAddress  = InvalidError("cannot decode address")
	ErrChecksumMismatch     = InvalidError("checksum mismatch")
	ErrCorruptRecord        = ProcessError("corrupt record")
	ErrCounterOverflow      = InvalidError("edition counter overflow")
	ErrDatabaseIsNotSet     = ProcessError("database is not set")
	ErrEditionExists        = MintError("edition already printed")
	ErrEditionNotFound      = NotFoundError("edition not found")
	ErrIllegalOwner         = PermissionError("illegal owner")
	ErrInsufficientFunds    = FundsError("insufficient funds")
	ErrInvalidAddressLength = InvalidError("invalid address length")
	ErrInvalidAmount        = InvalidError("invalid amount")
	ErrInvalidCommand       = InvalidError("invalid command")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidCursor        = InvalidError("invalid cursor")
	ErrInvalidEditionNumber = MintError("invalid edition number")
	ErrInvalidPayment       = InvalidError("invalid payment")
	ErrInvalidSeeds         = InvalidError("invalid seeds")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrItemExists           = ExistsError("item already registered")
	ErrItemNotFound         = NotFoundError("item not found")
	ErrMasterExists         = ExistsError("master already exists")
	ErrMasterNotFound       = MintError("master not found")
	ErrMaxSupplyReached     = MintError("maximum supply reached")
	ErrMissingParameters    = InvalidError("missing parameters")
	ErrNoViableBump         = ProcessError("no viable bump seed")
	ErrNotTokenAccount      = InvalidError("not a token account")
	ErrOnCurve              = InvalidError("derived address is on curve")
	ErrReadOnly             = ProcessError("database is read only")
	ErrTransactionNotInUse  = ProcessError("transaction not in use")
	ErrUnauthorized         = PermissionError("unauthorized")
	ErrWrongUpdateAuthority = MintError("wrong update authority")
	ErrZeroAddress          = InvalidError("zero address")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e FundsError) Error() string      { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e MintError) Error() string       { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrFunds(e error) bool      { _, ok := e.(FundsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrMint(e error) bool       { _, ok := e.(MintError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
