// Package errors is the structured error type shared by every layer of
// army-rater.
//
// An Error carries a Code, a message, an optional cause and free-form
// metadata. Codes survive wrapping, so a NotFound raised by a repository
// reaches the gRPC and HTTP handlers unchanged:
//
//	army, err := repo.Get(ctx, id)
//	if err != nil {
//	    return nil, errors.Wrapf(err, "failed to load army %s", id)
//	}
//
// Input problems are collected with a ValidationBuilder and returned as a
// single InvalidArgument whose field messages travel as a
// google.rpc.BadRequest detail over gRPC:
//
//	vb := errors.NewValidationBuilder()
//	if input.ArmyID == "" {
//	    vb.RequiredField("army_id")
//	}
//	errors.ValidateMin("game_size", input.GameSize, 1, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// Repositories return NotFound and AlreadyExists with the offending ID in
// the metadata. Orchestrators validate input and wrap repository errors.
// Handlers convert with ToGRPCError or Code.HTTPStatus and never inspect
// messages.
package errors
