// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wheel runs a participant's spin from request to recorded outcome.

# Play

Service.Play performs, in order:

  - request normalization and validation (models.ValidationError on failure)
  - eligibility: one spin per national ID (ErrAlreadyParticipated)
  - special prize availability, failing closed on storage errors
  - outcome selection by the prize.Selector; any award named in the
    request is ignored
  - persistence through the Store
  - an asynchronous notification for non-losing outcomes

Steps two through five run under a single mutex. The database enforces the
same rules with unique constraints; if the special prize is taken by another
writer between the check and the insert, a server-drawn spin is redrawn
once without the special prize.

# Administration

List, GetByNationalID and Disburse pass through to the Store. Disburse is
idempotent and returns ErrNotFound for unknown ids.
*/
package wheel
