package api

import "net/http"

// StatusInvalidInput is the status of every request whose body fails
// decoding or validation. 411 is kept for compatibility with existing
// clients.
const StatusInvalidInput = http.StatusLengthRequired

// Response messages. Their exact text is part of the API.
const (
	MsgInvalidInput = "Inputs are not correct!"

	MsgSignupSuccess = "You are register successfully !!"
	MsgSignupFailed  = "Error while signing up!!"
	MsgSigninSuccess = "You are successfully log in !!"
	MsgSigninFailed  = "Error while signin !!"
	MsgUserNotFound  = "User doesn't exist !!"

	MsgPostCreated  = "Blog post created successfully!!"
	MsgPostUpdated  = "Blog post updated successfully!!"
	MsgPostsListed  = "All Blog post received successfully!!"
	MsgPostFetched  = "Blog post fetched successfully !!"
	MsgPostFetchErr = "Error while fetching blog post !!"

	MsgCreateFailed = "Error while creating blog post !!"
	MsgUpdateFailed = "Error while updating blog post !!"
	MsgListFailed   = "Error while fetching blog posts !!"
)
