package utils

// error messages
const GENERIC_SIGNUP_ERROR = "We had some trouble signing you up. Please try again!"
const EMAIL_TAKEN_SIGNUP_ERROR = "Someone might have signed up with that email before. Please try logging in!"
const USERNAME_TAKEN_SIGNUP_ERROR = "Someone is already using that username! Please choose a different one!"
const GENERIC_LOGIN_ERROR = "We had some trouble logging you in. Please try again!"
const GENERIC_CONFIRMATION_ERROR = "We had some trouble confirming your account. Please try again!"
const PROFILE_EXISTS_ERROR = "A profile already exists for this user."
const ALREADY_JOINED_ERROR = "You have already joined this challenge."
const INVALID_DATE_RANGE_ERROR = "end_date must not be before start_date."
const NOT_FOUND_ERROR = "Not found."
const MISSING_REQUEST_DATA = "Missing request data."
const INVALID_REQUEST_BODY = "Invalid request body."
const JWT_TOKEN_PARSING_ERROR = "Your session is invalid. Please log in again."
const JWT_TOKEN_EXPIRED_ERROR = "Your session has expired. Please log in again."
const SERVER_DOWN = "Something went wrong on our end. Please try again later."

// token claim keys
const CLAIM_USERNAME = "username"
const CLAIM_EMAIL = "email"

// durations
const TOKEN_DURATION_HOURS = 24
const CODE_DURATION_MINUTES = 20

// rate limiting
const AUTH_REQUESTS_PER_SECOND = 10
