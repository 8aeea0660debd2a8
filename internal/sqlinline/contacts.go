package sqlinline

// Donor and NGO contact lookups. Records are written by the signup flows,
// which live outside this service.

const QGetDonor = `--sql 52a8e1c7-9f04-4d3b-86e2-b7d540c91a68
select id, name, email, created_at from donors where id = $1::uuid;
`

const QListDonors = `--sql d90b47f2-3c68-4a15-9e07-f51c82da3b94
select id, name, email, created_at from donors order by created_at desc;
`

const QGetNGO = `--sql 04f6c2d8-71b5-4e9a-bd30-8a29e75c01f4
select id, name, email, created_at from ngos where id = $1::uuid;
`

const QListNGOs = `--sql ab83d5e0-2697-40cf-91b4-63f0d8a217c5
select id, name, email, created_at from ngos order by created_at desc;
`
