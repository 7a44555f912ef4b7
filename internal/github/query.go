package github

// DefaultPRLimit is the number of open pull requests fetched per repository.
const DefaultPRLimit = 50

// repositoryQuery requests the $limit most recently updated open pull requests
// with their labels, comments and reviews. Connections are ordered oldest first
// and every list takes its last entries, so long threads keep their newest.
// Variables: $owner, $name, $limit.
const repositoryQuery = `query($owner: String!, $name: String!, $limit: Int!) {
  repository(owner: $owner, name: $name) {
    name
    pullRequests(last: $limit, states: OPEN, orderBy: {field: UPDATED_AT, direction: ASC}) {
      edges {
        node {
          id
          state
          title
          body
          number
          url
          mergeable
          author { login }
          labels(first: 20) {
            edges { node { name } }
          }
          comments(last: 50) {
            edges { node { ...commentFields } }
          }
          reviews(last: 50) {
            edges {
              node {
                author { login }
                bodyText
                state
                createdAt
                updatedAt
                comments(last: 20) {
                  edges { node { ...commentFields } }
                }
              }
            }
          }
          createdAt
          updatedAt
          closedAt
          mergedAt
        }
      }
    }
  }
}

fragment commentFields on Comment {
  author { login }
  bodyText
  createdAt
  updatedAt
}`
